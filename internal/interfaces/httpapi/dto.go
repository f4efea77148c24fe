package httpapi

import (
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

type manualHandicapRequest struct {
	HandicapIndex *float64 `json:"handicap_index" validate:"required"`
	Method        string   `json:"method" validate:"omitempty,max=32"`
	Notes         string   `json:"notes" validate:"omitempty,max=500"`
}

type recomputeRequest struct {
	UserIDs        []string `json:"user_ids" validate:"omitempty,max=1000,dive,required,max=128"`
	Workers        int      `json:"workers" validate:"omitempty,min=1,max=32"`
	SkipStatistics bool     `json:"skip_statistics"`
}

type currentHandicapDTO struct {
	UserID        string   `json:"user_id"`
	HandicapIndex *float64 `json:"handicap_index"`
}

type handicapHistoryDTO struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	HandicapIndex     float64   `json:"handicap_index"`
	EffectiveDate     time.Time `json:"effective_date"`
	CalculationMethod string    `json:"calculation_method"`
	RoundsUsed        int       `json:"rounds_used"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type handicapRecalculationDTO struct {
	UserID        string              `json:"user_id"`
	Updated       bool                `json:"updated"`
	HandicapIndex *float64            `json:"handicap_index"`
	Entry         *handicapHistoryDTO `json:"entry,omitempty"`
}

type differentialDTO struct {
	RoundID  string  `json:"round_id"`
	Value    float64 `json:"value"`
	Selected bool    `json:"selected"`
}

type handicapPreviewDTO struct {
	UserID          string            `json:"user_id"`
	HandicapIndex   float64           `json:"handicap_index"`
	RoundsAvailable int               `json:"rounds_available"`
	Differentials   []differentialDTO `json:"differentials"`
}

type scoringCountsDTO struct {
	EaglesOrBetter int `json:"eagles_or_better"`
	Birdies        int `json:"birdies"`
	Pars           int `json:"pars"`
	Bogeys         int `json:"bogeys"`
	DoubleBogeys   int `json:"double_bogeys"`
	Worse          int `json:"worse"`
}

type userStatisticsDTO struct {
	UserID               string           `json:"user_id"`
	RoundsPlayed         int              `json:"rounds_played"`
	AverageScore         float64          `json:"average_score"`
	BestScore            int              `json:"best_score"`
	WorstScore           int              `json:"worst_score"`
	HolesPlayed          int              `json:"holes_played"`
	ScoringCounts        scoringCountsDTO `json:"scoring_counts"`
	FairwayHitPct        float64          `json:"fairway_hit_pct"`
	GreenInRegulationPct float64          `json:"green_in_regulation_pct"`
	AveragePutts         float64          `json:"average_putts"`
	LongestDrive         int              `json:"longest_drive"`
	FavoriteCourseID     string           `json:"favorite_course_id,omitempty"`
	FavoriteCourseName   string           `json:"favorite_course_name,omitempty"`
	LastRoundAt          *time.Time       `json:"last_round_at"`
	CalculatedAt         time.Time        `json:"calculated_at"`
}

type courseSummaryDTO struct {
	CourseID     string    `json:"course_id"`
	CourseName   string    `json:"course_name"`
	RoundsPlayed int       `json:"rounds_played"`
	AverageScore float64   `json:"average_score"`
	BestScore    int       `json:"best_score"`
	LastPlayedAt time.Time `json:"last_played_at"`
}

type holeSummaryDTO struct {
	HoleNumber     int              `json:"hole_number"`
	Par            int              `json:"par"`
	Played         int              `json:"played"`
	AverageStrokes float64          `json:"average_strokes"`
	BestStrokes    int              `json:"best_strokes"`
	WorstStrokes   int              `json:"worst_strokes"`
	ScoringCounts  scoringCountsDTO `json:"scoring_counts"`
}

type monthlyTrendDTO struct {
	Month        string  `json:"month"`
	Label        string  `json:"label"`
	Rounds       int     `json:"rounds"`
	AverageScore float64 `json:"average_score"`
}

type playerProfileDTO struct {
	UserID        string            `json:"user_id"`
	HandicapIndex *float64          `json:"handicap_index"`
	Statistics    userStatisticsDTO `json:"statistics"`
	Trends        []monthlyTrendDTO `json:"trends"`
}

func handicapHistoryToDTO(v handicap.History) handicapHistoryDTO {
	return handicapHistoryDTO{
		ID:                v.ID,
		UserID:            v.UserID,
		HandicapIndex:     v.HandicapIndex,
		EffectiveDate:     v.EffectiveDate,
		CalculationMethod: v.CalculationMethod,
		RoundsUsed:        v.RoundsUsed,
		Notes:             v.Notes,
		CreatedAt:         v.CreatedAt,
	}
}

func handicapPreviewToDTO(userID string, calc handicap.Calculation) handicapPreviewDTO {
	selected := make(map[string]int, len(calc.Selected))
	for _, item := range calc.Selected {
		selected[item.RoundID]++
	}

	items := make([]differentialDTO, 0, len(calc.Differentials))
	for _, item := range calc.Differentials {
		picked := selected[item.RoundID] > 0
		if picked {
			selected[item.RoundID]--
		}
		items = append(items, differentialDTO{
			RoundID:  item.RoundID,
			Value:    item.Value,
			Selected: picked,
		})
	}

	return handicapPreviewDTO{
		UserID:          userID,
		HandicapIndex:   calc.Index,
		RoundsAvailable: calc.RoundsAvailable,
		Differentials:   items,
	}
}

func scoringCountsToDTO(v statistics.ScoringCounts) scoringCountsDTO {
	return scoringCountsDTO{
		EaglesOrBetter: v.EaglesOrBetter,
		Birdies:        v.Birdies,
		Pars:           v.Pars,
		Bogeys:         v.Bogeys,
		DoubleBogeys:   v.DoubleBogeys,
		Worse:          v.Worse,
	}
}

func userStatisticsToDTO(v statistics.UserStatistics) userStatisticsDTO {
	return userStatisticsDTO{
		UserID:               v.UserID,
		RoundsPlayed:         v.RoundsPlayed,
		AverageScore:         v.AverageScore,
		BestScore:            v.BestScore,
		WorstScore:           v.WorstScore,
		HolesPlayed:          v.HolesPlayed,
		ScoringCounts:        scoringCountsToDTO(v.ScoringCounts),
		FairwayHitPct:        v.FairwayHitPct,
		GreenInRegulationPct: v.GreenInRegulationPct,
		AveragePutts:         v.AveragePutts,
		LongestDrive:         v.LongestDrive,
		FavoriteCourseID:     v.FavoriteCourseID,
		FavoriteCourseName:   v.FavoriteCourseName,
		LastRoundAt:          v.LastRoundAt,
		CalculatedAt:         v.CalculatedAt,
	}
}

func courseSummariesToDTO(items []statistics.CourseSummary) []courseSummaryDTO {
	out := make([]courseSummaryDTO, 0, len(items))
	for _, v := range items {
		out = append(out, courseSummaryDTO{
			CourseID:     v.CourseID,
			CourseName:   v.CourseName,
			RoundsPlayed: v.RoundsPlayed,
			AverageScore: v.AverageScore,
			BestScore:    v.BestScore,
			LastPlayedAt: v.LastPlayedAt,
		})
	}
	return out
}

func holeSummariesToDTO(items []statistics.HoleSummary) []holeSummaryDTO {
	out := make([]holeSummaryDTO, 0, len(items))
	for _, v := range items {
		out = append(out, holeSummaryDTO{
			HoleNumber:     v.HoleNumber,
			Par:            v.Par,
			Played:         v.Played,
			AverageStrokes: v.AverageStrokes,
			BestStrokes:    v.BestStrokes,
			WorstStrokes:   v.WorstStrokes,
			ScoringCounts:  scoringCountsToDTO(v.ScoringCounts),
		})
	}
	return out
}

func monthlyTrendsToDTO(items []statistics.MonthlyTrend) []monthlyTrendDTO {
	out := make([]monthlyTrendDTO, 0, len(items))
	for _, v := range items {
		out = append(out, monthlyTrendDTO{
			Month:        v.Month,
			Label:        v.Label,
			Rounds:       v.Rounds,
			AverageScore: v.AverageScore,
		})
	}
	return out
}

func playerProfileToDTO(v usecase.PlayerProfile) playerProfileDTO {
	return playerProfileDTO{
		UserID:        v.UserID,
		HandicapIndex: v.HandicapIndex,
		Statistics:    userStatisticsToDTO(v.Statistics),
		Trends:        monthlyTrendsToDTO(v.Trends),
	}
}
