package round

import (
	"fmt"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/course"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

var AllStatuses = map[Status]struct{}{
	StatusActive:    {},
	StatusCompleted: {},
	StatusAbandoned: {},
}

// Round is one 18-hole outing on a course from a single tee selection.
type Round struct {
	ID       string
	CourseID string
	TeeName  string
	PlayedAt time.Time
	Status   Status
	Players  []Player
}

// Player is a participant of a round. HandicapAtRound is a historical record and is
// never rewritten when the player's handicap changes later.
type Player struct {
	UserID          string
	TotalScore      int
	HandicapAtRound *float64
	Scores          []PlayerScore
}

// PlayerScore is the per-hole result of one player.
type PlayerScore struct {
	HoleNumber        int
	Strokes           int
	Putts             int
	FairwayHit        bool
	GreenInRegulation bool
	Penalties         int
	DriveDistance     int
}

// CompletedRound is the handicap/statistics projection of one player's completed round.
type CompletedRound struct {
	RoundID      string
	UserID       string
	CourseID     string
	CourseName   string
	TeeName      string
	PlayedAt     time.Time
	TotalScore   int
	CourseRating float64
	SlopeRating  float64
}

// HoleScore is one player's strokes on one hole of a completed round, joined with the hole par.
type HoleScore struct {
	RoundID           string
	CourseID          string
	PlayedAt          time.Time
	HoleNumber        int
	Par               int
	Strokes           int
	Putts             int
	FairwayHit        bool
	GreenInRegulation bool
	Penalties         int
	DriveDistance     int
}

// CompletedQuery narrows ListCompletedByUser. Zero values mean no restriction.
type CompletedQuery struct {
	Since time.Time
	Limit int
}

func (r Round) IsCompleted() bool {
	return r.Status == StatusCompleted
}

func (r Round) PlayerByUser(userID string) (Player, bool) {
	for _, p := range r.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return Player{}, false
}

// Validate checks the structural invariants of a round. Completed rounds must carry
// exactly 18 unique hole scores per player whose strokes sum to the total score.
func (r Round) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("round id is required")
	}
	if r.CourseID == "" {
		return fmt.Errorf("course id is required for round %s", r.ID)
	}
	if _, ok := AllStatuses[r.Status]; !ok {
		return fmt.Errorf("unknown round status %q for round %s", r.Status, r.ID)
	}
	if len(r.Players) == 0 {
		return fmt.Errorf("round %s has no players", r.ID)
	}

	seenUsers := make(map[string]struct{}, len(r.Players))
	for _, p := range r.Players {
		if p.UserID == "" {
			return fmt.Errorf("user id is required for round %s", r.ID)
		}
		if _, dup := seenUsers[p.UserID]; dup {
			return fmt.Errorf("duplicate player %s in round %s", p.UserID, r.ID)
		}
		seenUsers[p.UserID] = struct{}{}

		if err := p.validateScores(r.IsCompleted()); err != nil {
			return fmt.Errorf("round %s player %s: %w", r.ID, p.UserID, err)
		}
	}

	return nil
}

func (p Player) validateScores(completed bool) error {
	seenHoles := make(map[int]struct{}, len(p.Scores))
	sum := 0
	for _, s := range p.Scores {
		if s.HoleNumber < 1 || s.HoleNumber > course.HolesPerRound {
			return fmt.Errorf("hole number %d out of range", s.HoleNumber)
		}
		if _, dup := seenHoles[s.HoleNumber]; dup {
			return fmt.Errorf("duplicate score for hole %d", s.HoleNumber)
		}
		seenHoles[s.HoleNumber] = struct{}{}
		if s.Strokes < 1 {
			return fmt.Errorf("strokes must be >= 1 on hole %d", s.HoleNumber)
		}
		if s.Putts < 0 || s.Penalties < 0 || s.DriveDistance < 0 {
			return fmt.Errorf("negative counter on hole %d", s.HoleNumber)
		}
		sum += s.Strokes
	}

	if !completed {
		return nil
	}
	if len(p.Scores) != course.HolesPerRound {
		return fmt.Errorf("completed round needs %d scores, got %d", course.HolesPerRound, len(p.Scores))
	}
	if p.TotalScore != sum {
		return fmt.Errorf("total score %d does not match stroke sum %d", p.TotalScore, sum)
	}

	return nil
}
