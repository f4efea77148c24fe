package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/golf-tracker/internal/domain/course"
	"github.com/riskibarqy/golf-tracker/internal/domain/round"
)

// RoundRepository keeps courses and rounds in memory and derives the completed-round
// projections from them on every read.
type RoundRepository struct {
	mu      sync.RWMutex
	courses map[string]course.Course
	rounds  map[string]round.Round
	orders  []string
}

func NewRoundRepository(courses []course.Course, rounds []round.Round) (*RoundRepository, error) {
	r := &RoundRepository{
		courses: make(map[string]course.Course, len(courses)),
		rounds:  make(map[string]round.Round, len(rounds)),
		orders:  make([]string, 0, len(rounds)),
	}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	for _, item := range rounds {
		if err := r.Add(context.Background(), item); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add stores a round after validating it. Rounds are immutable once added.
func (r *RoundRepository) Add(_ context.Context, item round.Round) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate round %s: %w", item.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[item.CourseID]; !ok {
		return fmt.Errorf("round %s references unknown course %s", item.ID, item.CourseID)
	}
	if _, ok := r.rounds[item.ID]; ok {
		return fmt.Errorf("round %s already exists", item.ID)
	}

	r.rounds[item.ID] = cloneRound(item)
	r.orders = append(r.orders, item.ID)
	return nil
}

func (r *RoundRepository) ListCompletedByUser(_ context.Context, userID string, query round.CompletedQuery) ([]round.CompletedRound, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]round.CompletedRound, 0)
	for _, id := range r.orders {
		item := r.rounds[id]
		if !item.IsCompleted() {
			continue
		}
		if !query.Since.IsZero() && item.PlayedAt.Before(query.Since) {
			continue
		}
		p, ok := item.PlayerByUser(userID)
		if !ok {
			continue
		}

		c := r.courses[item.CourseID]
		tee, _ := c.TeeByName(item.TeeName)
		out = append(out, round.CompletedRound{
			RoundID:      item.ID,
			UserID:       userID,
			CourseID:     c.ID,
			CourseName:   c.Name,
			TeeName:      item.TeeName,
			PlayedAt:     item.PlayedAt,
			TotalScore:   p.TotalScore,
			CourseRating: tee.CourseRating,
			SlopeRating:  tee.SlopeRating,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PlayedAt.Equal(out[j].PlayedAt) {
			return out[i].PlayedAt.After(out[j].PlayedAt)
		}
		return out[i].RoundID > out[j].RoundID
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}

	return out, nil
}

func (r *RoundRepository) ListHoleScoresByUser(_ context.Context, userID, courseID string) ([]round.HoleScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]round.HoleScore, 0)
	for _, id := range r.orders {
		item := r.rounds[id]
		if !item.IsCompleted() {
			continue
		}
		if courseID != "" && item.CourseID != courseID {
			continue
		}
		p, ok := item.PlayerByUser(userID)
		if !ok {
			continue
		}

		c := r.courses[item.CourseID]
		for _, s := range p.Scores {
			hole, ok := c.HoleByNumber(s.HoleNumber)
			if !ok {
				continue
			}
			out = append(out, round.HoleScore{
				RoundID:           item.ID,
				CourseID:          item.CourseID,
				PlayedAt:          item.PlayedAt,
				HoleNumber:        s.HoleNumber,
				Par:               hole.Par,
				Strokes:           s.Strokes,
				Putts:             s.Putts,
				FairwayHit:        s.FairwayHit,
				GreenInRegulation: s.GreenInRegulation,
				Penalties:         s.Penalties,
				DriveDistance:     s.DriveDistance,
			})
		}
	}

	return out, nil
}

func (r *RoundRepository) ListUserIDsWithCompletedRounds(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, item := range r.rounds {
		if !item.IsCompleted() {
			continue
		}
		for _, p := range item.Players {
			seen[p.UserID] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for userID := range seen {
		out = append(out, userID)
	}
	sort.Strings(out)

	return out, nil
}

func cloneRound(item round.Round) round.Round {
	copied := item
	copied.Players = make([]round.Player, 0, len(item.Players))
	for _, p := range item.Players {
		cp := p
		cp.Scores = append([]round.PlayerScore(nil), p.Scores...)
		if p.HandicapAtRound != nil {
			v := *p.HandicapAtRound
			cp.HandicapAtRound = &v
		}
		copied.Players = append(copied.Players, cp)
	}
	return copied
}
