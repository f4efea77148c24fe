package statistics

import (
	"sort"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

// SummarizeCourses groups completed rounds by course. Courses without rounds never
// appear in the output. Most recently played courses come first.
func SummarizeCourses(rounds []round.CompletedRound) []CourseSummary {
	type acc struct {
		summary CourseSummary
		total   int
	}

	byCourse := make(map[string]*acc)
	for _, r := range rounds {
		if r.TotalScore < 1 {
			continue
		}
		a, ok := byCourse[r.CourseID]
		if !ok {
			a = &acc{summary: CourseSummary{
				CourseID:   r.CourseID,
				CourseName: r.CourseName,
				BestScore:  r.TotalScore,
			}}
			byCourse[r.CourseID] = a
		}

		a.summary.RoundsPlayed++
		a.total += r.TotalScore
		if r.TotalScore < a.summary.BestScore {
			a.summary.BestScore = r.TotalScore
		}
		if r.PlayedAt.After(a.summary.LastPlayedAt) {
			a.summary.LastPlayedAt = r.PlayedAt
		}
		if a.summary.CourseName == "" {
			a.summary.CourseName = r.CourseName
		}
	}

	out := make([]CourseSummary, 0, len(byCourse))
	for _, a := range byCourse {
		a.summary.AverageScore = roundTo(float64(a.total)/float64(a.summary.RoundsPlayed), 2)
		out = append(out, a.summary)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastPlayedAt.Equal(out[j].LastPlayedAt) {
			return out[i].LastPlayedAt.After(out[j].LastPlayedAt)
		}
		return out[i].CourseID < out[j].CourseID
	})

	return out
}
