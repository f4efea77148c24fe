package statistics

import (
	"sort"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

// SummarizeHoles groups hole scores by hole number. Every score is classified against
// its own hole par; when several courses share a hole number the reported par is the
// most frequent one, lower par winning ties.
func SummarizeHoles(scores []round.HoleScore) []HoleSummary {
	type acc struct {
		summary HoleSummary
		strokes int
		pars    map[int]int
	}

	byHole := make(map[int]*acc)
	for _, s := range scores {
		if s.Strokes < 1 {
			continue
		}
		a, ok := byHole[s.HoleNumber]
		if !ok {
			a = &acc{
				summary: HoleSummary{
					HoleNumber:   s.HoleNumber,
					BestStrokes:  s.Strokes,
					WorstStrokes: s.Strokes,
				},
				pars: make(map[int]int, 1),
			}
			byHole[s.HoleNumber] = a
		}

		a.summary.Played++
		a.strokes += s.Strokes
		a.pars[s.Par]++
		if s.Strokes < a.summary.BestStrokes {
			a.summary.BestStrokes = s.Strokes
		}
		if s.Strokes > a.summary.WorstStrokes {
			a.summary.WorstStrokes = s.Strokes
		}
		a.summary.ScoringCounts.Add(Classify(s.Strokes, s.Par))
	}

	out := make([]HoleSummary, 0, len(byHole))
	for _, a := range byHole {
		a.summary.Par = dominantPar(a.pars)
		a.summary.AverageStrokes = roundTo(float64(a.strokes)/float64(a.summary.Played), 2)
		out = append(out, a.summary)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].HoleNumber < out[j].HoleNumber
	})

	return out
}

func dominantPar(counts map[int]int) int {
	best, bestCount := 0, 0
	for par, count := range counts {
		if count > bestCount || (count == bestCount && par < best) {
			best, bestCount = par, count
		}
	}
	return best
}
