package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
	"github.com/riskibarqy/golf-tracker/internal/domain/round"
	"github.com/riskibarqy/golf-tracker/internal/platform/id"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
	"github.com/riskibarqy/golf-tracker/internal/platform/metrics"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type ManualHandicapInput struct {
	UserID        string
	HandicapIndex float64
	Method        string
	Notes         string
}

type HandicapService struct {
	roundRepo    round.Repository
	handicapRepo handicap.Repository
	idGen        id.Generator
	metrics      metrics.Recorder
	logger       *logging.Logger
	now          func() time.Time
}

func NewHandicapService(
	roundRepo round.Repository,
	handicapRepo handicap.Repository,
	idGen id.Generator,
	recorder metrics.Recorder,
	logger *logging.Logger,
) *HandicapService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &HandicapService{
		roundRepo:    roundRepo,
		handicapRepo: handicapRepo,
		idGen:        idGen,
		metrics:      recorder,
		logger:       logger,
		now:          time.Now,
	}
}

// CalculateFromRounds computes the index from the user's most recent completed rounds
// without persisting anything. ok is false when the user has too few rounds.
func (s *HandicapService) CalculateFromRounds(ctx context.Context, userID string) (handicap.Calculation, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HandicapService.CalculateFromRounds", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return handicap.Calculation{}, false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	rounds, err := s.roundRepo.ListCompletedByUser(ctx, userID, round.CompletedQuery{Limit: handicap.MaxRounds})
	if err != nil {
		return handicap.Calculation{}, false, fmt.Errorf("list completed rounds: %w", err)
	}

	inputs := make([]handicap.RoundInput, 0, len(rounds))
	for _, r := range rounds {
		inputs = append(inputs, handicap.RoundInput{
			RoundID:      r.RoundID,
			TotalScore:   r.TotalScore,
			CourseRating: r.CourseRating,
			SlopeRating:  r.SlopeRating,
		})
	}

	calc, ok, err := handicap.CalculateIndex(inputs)
	if err != nil {
		if errors.Is(err, handicap.ErrInvalidScore) {
			return handicap.Calculation{}, false, fmt.Errorf("%w: user=%s: %v", ErrInvalidInput, userID, err)
		}
		return handicap.Calculation{}, false, fmt.Errorf("calculate index: %w", err)
	}

	return calc, ok, nil
}

// UpdateFromRounds recalculates the index and, when one can be produced, appends a
// history entry and moves the current snapshot in one write.
func (s *HandicapService) UpdateFromRounds(ctx context.Context, userID string) (handicap.History, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HandicapService.UpdateFromRounds", userAttr(userID))
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.ObserveRecomputeDuration("handicap", time.Since(start))
	}()

	calc, ok, err := s.CalculateFromRounds(ctx, userID)
	if err != nil {
		s.metrics.IncHandicapOutcome(metrics.OutcomeError)
		return handicap.History{}, false, err
	}
	if !ok {
		s.metrics.IncHandicapOutcome(metrics.OutcomeInsufficient)
		s.logger.DebugContext(ctx, "handicap not updated, insufficient rounds",
			"user_id", userID,
			"rounds", calc.RoundsAvailable,
		)
		return handicap.History{}, false, nil
	}

	entry, err := s.record(ctx, strings.TrimSpace(userID), calc.Index, handicap.MethodUSGA, calc.RoundsAvailable, calc.Note())
	if err != nil {
		s.metrics.IncHandicapOutcome(metrics.OutcomeError)
		return handicap.History{}, false, err
	}

	s.metrics.IncHandicapOutcome(metrics.OutcomeUpdated)
	return entry, true, nil
}

// RecordManual stores a caller-supplied index. The value is rounded to one decimal and
// clamped into the valid range. Statistics are not touched.
func (s *HandicapService) RecordManual(ctx context.Context, input ManualHandicapInput) (handicap.History, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HandicapService.RecordManual", userAttr(input.UserID))
	defer span.End()

	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return handicap.History{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if math.IsNaN(input.HandicapIndex) || math.IsInf(input.HandicapIndex, 0) {
		return handicap.History{}, fmt.Errorf("%w: handicap index must be a finite number", ErrInvalidInput)
	}

	method := strings.TrimSpace(input.Method)
	if method == "" {
		method = handicap.MethodManual
	}

	index := handicap.Clamp(handicap.RoundToTenth(input.HandicapIndex))
	return s.record(ctx, userID, index, method, 0, strings.TrimSpace(input.Notes))
}

func (s *HandicapService) GetCurrent(ctx context.Context, userID string) (float64, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HandicapService.GetCurrent", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, false, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	value, exists, err := s.handicapRepo.GetCurrent(ctx, userID)
	if err != nil {
		return 0, false, fmt.Errorf("get current handicap: %w", err)
	}

	return value, exists, nil
}

// ListHistory returns the newest entries first.
func (s *HandicapService) ListHistory(ctx context.Context, userID string, limit int) ([]handicap.History, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HandicapService.ListHistory", userAttr(userID))
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	switch {
	case limit < 0:
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	case limit == 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	items, err := s.handicapRepo.ListHistory(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list handicap history: %w", err)
	}

	return items, nil
}

func (s *HandicapService) record(ctx context.Context, userID string, index float64, method string, roundsUsed int, notes string) (handicap.History, error) {
	entryID, err := s.idGen.NewID()
	if err != nil {
		return handicap.History{}, fmt.Errorf("generate history id: %w", err)
	}

	now := s.now().UTC()
	entry := handicap.History{
		ID:                entryID,
		UserID:            userID,
		HandicapIndex:     index,
		EffectiveDate:     now,
		CalculationMethod: method,
		RoundsUsed:        roundsUsed,
		Notes:             notes,
		CreatedAt:         now,
	}
	if err := entry.Validate(); err != nil {
		return handicap.History{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.handicapRepo.Record(ctx, entry); err != nil {
		return handicap.History{}, fmt.Errorf("record handicap history: %w", err)
	}

	s.logger.InfoContext(ctx, "handicap recorded",
		"user_id", userID,
		"handicap_index", index,
		"method", method,
		"rounds_used", roundsUsed,
	)

	return entry, nil
}
