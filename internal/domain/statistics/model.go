package statistics

import "time"

// Category buckets a hole result relative to par.
type Category string

const (
	CategoryEagleOrBetter Category = "eagle_or_better"
	CategoryBirdie        Category = "birdie"
	CategoryPar           Category = "par"
	CategoryBogey         Category = "bogey"
	CategoryDoubleBogey   Category = "double_bogey"
	CategoryWorse         Category = "worse"
)

type ScoringCounts struct {
	EaglesOrBetter int
	Birdies        int
	Pars           int
	Bogeys         int
	DoubleBogeys   int
	Worse          int
}

type CourseSummary struct {
	CourseID     string
	CourseName   string
	RoundsPlayed int
	AverageScore float64
	BestScore    int
	LastPlayedAt time.Time
}

type HoleSummary struct {
	HoleNumber     int
	Par            int
	Played         int
	AverageStrokes float64
	BestStrokes    int
	WorstStrokes   int
	ScoringCounts
}

// UserStatistics is the recomputable per-user snapshot. It is only ever replaced as
// a whole by a recompute, never edited field by field.
type UserStatistics struct {
	UserID               string
	RoundsPlayed         int
	AverageScore         float64
	BestScore            int
	WorstScore           int
	HolesPlayed          int
	ScoringCounts        ScoringCounts
	FairwayHitPct        float64
	GreenInRegulationPct float64
	AveragePutts         float64
	LongestDrive         int
	FavoriteCourseID     string
	FavoriteCourseName   string
	LastRoundAt          *time.Time
	CalculatedAt         time.Time
}

type MonthlyTrend struct {
	Month        string
	Label        string
	Rounds       int
	AverageScore float64
}
