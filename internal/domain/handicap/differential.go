package handicap

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/golf-tracker/internal/domain/course"
)

const standardSlope = 113.0

var ErrInvalidScore = crerr.New("invalid total score")

// Differential normalizes one round score against the difficulty of the tee played:
//
//	(totalScore - courseRating) * 113 / slopeRating
//
// The result is not rounded. Missing or non-positive ratings fall back to the
// course defaults; a missing total score is rejected.
func Differential(totalScore int, courseRating, slopeRating float64) (float64, error) {
	if totalScore < 1 {
		return 0, crerr.Wrapf(ErrInvalidScore, "total score must be >= 1, got %d", totalScore)
	}

	courseRating, slopeRating = course.NormalizeRatings(courseRating, slopeRating)
	return (float64(totalScore) - courseRating) * standardSlope / slopeRating, nil
}
