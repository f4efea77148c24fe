package statistics

import (
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

const (
	DefaultTrendMonths = 6
	MinTrendMonths     = 1
	MaxTrendMonths     = 24

	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
)

// TrendCutoff subtracts calendar months from now. The day of month is clamped to the
// length of the target month, so Mar 31 minus one month is Feb 28 (or 29).
func TrendCutoff(now time.Time, monthsBack int) time.Time {
	first := time.Date(now.Year(), now.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, now.Location())
	day := now.Day()
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, now.Location())
}

// MonthlyTrends buckets rounds into exactly monthsBack calendar months ending with the
// month of now, oldest first. Months without rounds report zero rounds and a zero
// average. Rounds outside the window are ignored.
func MonthlyTrends(rounds []round.CompletedRound, now time.Time, monthsBack int) []MonthlyTrend {
	if monthsBack < 1 {
		return nil
	}

	type acc struct {
		count int
		total int
	}
	byMonth := make(map[string]*acc, monthsBack)
	for _, r := range rounds {
		if r.TotalScore < 1 {
			continue
		}
		key := r.PlayedAt.In(now.Location()).Format(monthKeyLayout)
		a, ok := byMonth[key]
		if !ok {
			a = &acc{}
			byMonth[key] = a
		}
		a.count++
		a.total += r.TotalScore
	}

	out := make([]MonthlyTrend, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		trend := MonthlyTrend{
			Month: month.Format(monthKeyLayout),
			Label: month.Format(monthLabelLayout),
		}
		if a, ok := byMonth[trend.Month]; ok {
			trend.Rounds = a.count
			trend.AverageScore = roundTo(float64(a.total)/float64(a.count), 2)
		}
		out = append(out, trend)
	}

	return out
}

func daysIn(monthStart time.Time) int {
	return time.Date(monthStart.Year(), monthStart.Month()+1, 0, 0, 0, 0, 0, monthStart.Location()).Day()
}
