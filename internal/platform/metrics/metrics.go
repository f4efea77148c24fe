package metrics

import "time"

const (
	OutcomeUpdated      = "updated"
	OutcomeInsufficient = "insufficient"
	OutcomeError        = "error"
)

// Recorder collects calculation metrics. Implementations must be safe for concurrent use.
type Recorder interface {
	IncHandicapOutcome(outcome string)
	IncStatisticsRecompute(outcome string)
	ObserveRecomputeDuration(kind string, duration time.Duration)
}

type Nop struct{}

func (Nop) IncHandicapOutcome(string)                      {}
func (Nop) IncStatisticsRecompute(string)                  {}
func (Nop) ObserveRecomputeDuration(string, time.Duration) {}
