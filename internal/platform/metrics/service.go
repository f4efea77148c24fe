package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Recorder = (*Service)(nil)

type Service struct {
	HandicapOutcomes    *prometheus.CounterVec
	StatisticsRecompute *prometheus.CounterVec
	RecomputeDuration   *prometheus.HistogramVec
}

// NewHandler serves the given gatherer, or the default one when none is passed.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors. It uses the default registerer
// unless one is given.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		HandicapOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_handicap_calculations_total",
			Help: "Handicap recalculations by outcome.",
		}, []string{"outcome"}),
		StatisticsRecompute: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "golf_statistics_recomputes_total",
			Help: "User statistics snapshot recomputes by outcome.",
		}, []string{"outcome"}),
		RecomputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "golf_recompute_duration_seconds",
			Help:    "Duration of handicap and statistics recomputes.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),
	}

	reg.MustRegister(
		s.HandicapOutcomes,
		s.StatisticsRecompute,
		s.RecomputeDuration,
	)

	return s
}

func (s *Service) IncHandicapOutcome(outcome string) {
	s.HandicapOutcomes.WithLabelValues(outcome).Inc()
}

func (s *Service) IncStatisticsRecompute(outcome string) {
	s.StatisticsRecompute.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveRecomputeDuration(kind string, duration time.Duration) {
	s.RecomputeDuration.WithLabelValues(kind).Observe(duration.Seconds())
}
