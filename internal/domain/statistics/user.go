package statistics

import (
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

// Compute folds a user's complete history of completed rounds and hole scores into a
// snapshot. Rounds without a total score are left out of every round-level figure.
// The result depends only on its inputs, so recomputing over unchanged history yields
// the same values.
func Compute(userID string, rounds []round.CompletedRound, holes []round.HoleScore, calculatedAt time.Time) UserStatistics {
	stats := UserStatistics{
		UserID:       userID,
		CalculatedAt: calculatedAt,
	}

	scored, total := 0, 0
	var last time.Time
	for _, r := range rounds {
		if r.TotalScore < 1 {
			continue
		}
		if r.PlayedAt.After(last) {
			last = r.PlayedAt
		}
		if scored == 0 || r.TotalScore < stats.BestScore {
			stats.BestScore = r.TotalScore
		}
		if r.TotalScore > stats.WorstScore {
			stats.WorstScore = r.TotalScore
		}
		scored++
		total += r.TotalScore
	}
	stats.RoundsPlayed = scored
	if scored > 0 {
		stats.AverageScore = roundTo(float64(total)/float64(scored), 2)
	}
	if !last.IsZero() {
		stats.LastRoundAt = &last
	}

	if favorite, ok := favoriteCourse(rounds); ok {
		stats.FavoriteCourseID = favorite.CourseID
		stats.FavoriteCourseName = favorite.CourseName
	}

	fairways, fairwayChances, greens, putts := 0, 0, 0, 0
	roundsWithHoles := make(map[string]struct{})
	for _, h := range holes {
		if h.Strokes < 1 {
			continue
		}
		stats.HolesPlayed++
		stats.ScoringCounts.Add(Classify(h.Strokes, h.Par))
		roundsWithHoles[h.RoundID] = struct{}{}

		if h.Par >= 4 {
			fairwayChances++
			if h.FairwayHit {
				fairways++
			}
		}
		if h.GreenInRegulation {
			greens++
		}
		putts += h.Putts
		if h.DriveDistance > stats.LongestDrive {
			stats.LongestDrive = h.DriveDistance
		}
	}

	stats.FairwayHitPct = percent(fairways, fairwayChances)
	stats.GreenInRegulationPct = percent(greens, stats.HolesPlayed)
	if len(roundsWithHoles) > 0 {
		stats.AveragePutts = roundTo(float64(putts)/float64(len(roundsWithHoles)), 1)
	}

	return stats
}

// favoriteCourse is the course with the most rounds, ties going to the most recently
// played course and then to the lowest course id.
func favoriteCourse(rounds []round.CompletedRound) (CourseSummary, bool) {
	summaries := SummarizeCourses(rounds)
	if len(summaries) == 0 {
		return CourseSummary{}, false
	}

	best := summaries[0]
	for _, s := range summaries[1:] {
		if s.RoundsPlayed > best.RoundsPlayed {
			best = s
		}
	}
	return best, true
}
