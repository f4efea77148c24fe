package handicap

import (
	"fmt"
	"math"
	"sort"

	crerr "github.com/cockroachdb/errors"
)

const (
	MinIndex = -5.0
	MaxIndex = 54.0

	// MinRounds is the smallest history that yields an index.
	MinRounds = 5
	// MaxRounds caps the window of most recent rounds considered.
	MaxRounds = 20

	adjustmentFactor = 0.96
)

// RoundInput is the minimum a round needs to contribute a differential.
type RoundInput struct {
	RoundID      string
	TotalScore   int
	CourseRating float64
	SlopeRating  float64
}

type ScoredDifferential struct {
	RoundID string
	Value   float64
}

// Calculation describes how an index was derived.
type Calculation struct {
	Index           float64
	RoundsAvailable int
	Differentials   []ScoredDifferential
	Selected        []ScoredDifferential
}

// Note renders the audit note stored alongside a computed index.
func (c Calculation) Note() string {
	return fmt.Sprintf("calculated from best %d of %d differentials", len(c.Selected), c.RoundsAvailable)
}

// SelectionCount returns how many of the lowest differentials count toward the index
// for the given number of available rounds.
func SelectionCount(rounds int) int {
	switch {
	case rounds >= 20:
		return 8
	case rounds >= 15:
		return 6
	case rounds >= 10:
		return 4
	case rounds >= 8:
		return 3
	case rounds >= 6:
		return 2
	case rounds >= MinRounds:
		return 1
	default:
		return 0
	}
}

// CalculateIndex derives a handicap index from rounds ordered newest first. Only the
// first MaxRounds entries are considered. The boolean is false when fewer than
// MinRounds rounds are available; that is a regular outcome, not an error.
func CalculateIndex(rounds []RoundInput) (Calculation, bool, error) {
	if len(rounds) > MaxRounds {
		rounds = rounds[:MaxRounds]
	}
	if len(rounds) < MinRounds {
		return Calculation{RoundsAvailable: len(rounds)}, false, nil
	}

	diffs := make([]ScoredDifferential, 0, len(rounds))
	for _, r := range rounds {
		value, err := Differential(r.TotalScore, r.CourseRating, r.SlopeRating)
		if err != nil {
			return Calculation{}, false, crerr.Wrapf(err, "round %s", r.RoundID)
		}
		diffs = append(diffs, ScoredDifferential{RoundID: r.RoundID, Value: value})
	}

	sort.SliceStable(diffs, func(i, j int) bool {
		return diffs[i].Value < diffs[j].Value
	})

	selected := diffs[:SelectionCount(len(diffs))]
	sum := 0.0
	for _, d := range selected {
		sum += d.Value
	}
	avg := sum / float64(len(selected))

	return Calculation{
		Index:           Clamp(RoundToTenth(avg * adjustmentFactor)),
		RoundsAvailable: len(rounds),
		Differentials:   diffs,
		Selected:        append([]ScoredDifferential(nil), selected...),
	}, true, nil
}

// RoundToTenth rounds half away from zero to one decimal place.
func RoundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func Clamp(v float64) float64 {
	return math.Min(MaxIndex, math.Max(MinIndex, v))
}
