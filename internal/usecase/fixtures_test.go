package usecase

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/course"
	"github.com/riskibarqy/golf-tracker/internal/domain/round"
	"github.com/riskibarqy/golf-tracker/internal/infrastructure/repository/memory"
)

const (
	testCourseA = "course-a"
	testCourseB = "course-b"
	testTee     = "Standard"
)

var fixtureNow = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	n atomic.Int64
}

func (g *sequenceIDs) NewID() (string, error) {
	return fmt.Sprintf("hist-%03d", g.n.Add(1)), nil
}

func testCourses() []course.Course {
	build := func(id, name string) course.Course {
		holes := make([]course.Hole, 0, course.HolesPerRound)
		for i := 1; i <= course.HolesPerRound; i++ {
			holes = append(holes, course.Hole{Number: i, Par: 4})
		}
		return course.Course{
			ID:    id,
			Name:  name,
			Holes: holes,
			Tees:  []course.Tee{{Name: testTee, CourseRating: 72, SlopeRating: 113}},
		}
	}
	return []course.Course{build(testCourseA, "Course A"), build(testCourseB, "Course B")}
}

// completedRound spreads total across 18 holes so the strokes add up exactly.
func completedRound(id, courseID, userID string, playedAt time.Time, total int) round.Round {
	base, extra := total/course.HolesPerRound, total%course.HolesPerRound
	p := round.Player{UserID: userID, TotalScore: total}
	for hole := 1; hole <= course.HolesPerRound; hole++ {
		strokes := base
		if hole <= extra {
			strokes++
		}
		p.Scores = append(p.Scores, round.PlayerScore{
			HoleNumber:        hole,
			Strokes:           strokes,
			Putts:             2,
			FairwayHit:        hole%2 == 0,
			GreenInRegulation: hole%3 == 0,
			DriveDistance:     200 + hole,
		})
	}

	return round.Round{
		ID:       id,
		CourseID: courseID,
		TeeName:  testTee,
		PlayedAt: playedAt,
		Status:   round.StatusCompleted,
		Players:  []round.Player{p},
	}
}

// roundsEveryWeek returns one round per total, newest first starting a day before now.
func roundsEveryWeek(userID, courseID string, totals ...int) []round.Round {
	out := make([]round.Round, 0, len(totals))
	for i, total := range totals {
		out = append(out, completedRound(
			fmt.Sprintf("%s-%s-%02d", userID, courseID, i),
			courseID, userID,
			fixtureNow.AddDate(0, 0, -(1+7*i)),
			total,
		))
	}
	return out
}

func repeatScore(score, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = score
	}
	return out
}

func newRoundRepo(t *testing.T, rounds ...round.Round) *memory.RoundRepository {
	t.Helper()

	repo, err := memory.NewRoundRepository(testCourses(), rounds)
	if err != nil {
		t.Fatalf("new round repository: %v", err)
	}
	return repo
}

func newHandicapServiceForTest(roundRepo round.Repository, handicapRepo *memory.HandicapRepository) *HandicapService {
	svc := NewHandicapService(roundRepo, handicapRepo, &sequenceIDs{}, nil, nil)
	svc.now = func() time.Time { return fixtureNow }
	return svc
}

func newStatisticsServiceForTest(roundRepo round.Repository, statsRepo *memory.StatisticsRepository) *StatisticsService {
	svc := NewStatisticsService(roundRepo, statsRepo, StatisticsConfig{}, nil, nil)
	svc.now = func() time.Time { return fixtureNow }
	return svc
}
