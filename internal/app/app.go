package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/golf-tracker/internal/config"
	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
	"github.com/riskibarqy/golf-tracker/internal/domain/round"
	"github.com/riskibarqy/golf-tracker/internal/domain/statistics"
	cacherepo "github.com/riskibarqy/golf-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/golf-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-tracker/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-tracker/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/golf-tracker/internal/platform/cache"
	"github.com/riskibarqy/golf-tracker/internal/platform/id"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
	"github.com/riskibarqy/golf-tracker/internal/platform/metrics"
	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

// Container holds the services shared by the HTTP server and the CLI.
type Container struct {
	Config     config.Config
	Logger     *logging.Logger
	Handicaps  *usecase.HandicapService
	Statistics *usecase.StatisticsService
	Profiles   *usecase.ProfileService
	Recompute  *usecase.RecomputeService

	registry *prometheus.Registry
	db       *sqlx.DB
}

type repositories struct {
	rounds     round.Repository
	handicaps  handicap.Repository
	statistics statistics.Repository
}

func NewContainer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	repos, err := c.openRepositories(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.handicaps = cacherepo.NewHandicapRepository(repos.handicaps, store)
		repos.statistics = cacherepo.NewStatisticsRepository(repos.statistics, store)
	}

	var recorder metrics.Recorder = metrics.Nop{}
	if cfg.MetricsEnabled {
		c.registry = prometheus.NewRegistry()
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewService(c.registry)
	}

	c.Handicaps = usecase.NewHandicapService(repos.rounds, repos.handicaps, id.NewUUIDGenerator(), recorder, logger)
	c.Statistics = usecase.NewStatisticsService(repos.rounds, repos.statistics, usecase.StatisticsConfig{
		DefaultTrendMonths: cfg.TrendDefaultMonths,
	}, recorder, logger)
	c.Profiles = usecase.NewProfileService(c.Handicaps, c.Statistics)
	c.Recompute = usecase.NewRecomputeService(repos.rounds, c.Handicaps, c.Statistics, cfg.RecomputeWorkers, logger)

	logger.Info("services initialized",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"metrics_enabled", cfg.MetricsEnabled,
	)

	return c, nil
}

func (c *Container) openRepositories(ctx context.Context) (repositories, error) {
	switch c.Config.StorageDriver {
	case config.StoragePostgres:
		db, err := openPostgres(ctx, c.Config)
		if err != nil {
			return repositories{}, err
		}
		c.db = db
		return repositories{
			rounds:     postgres.NewRoundRepository(db),
			handicaps:  postgres.NewHandicapRepository(db),
			statistics: postgres.NewStatisticsRepository(db),
		}, nil
	case config.StorageMemory, "":
		rounds, err := memory.NewRoundRepository(memory.SeedCourses(), memory.SeedRounds(time.Now().UTC()))
		if err != nil {
			return repositories{}, fmt.Errorf("seed memory rounds: %w", err)
		}
		return repositories{
			rounds:     rounds,
			handicaps:  memory.NewHandicapRepository(),
			statistics: memory.NewStatisticsRepository(),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", c.Config.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// MetricsHandler is nil when metrics are disabled.
func (c *Container) MetricsHandler() http.Handler {
	if c.registry == nil {
		return nil
	}
	return metrics.NewHandler(c.registry)
}

func (c *Container) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func NewHTTPServer(c *Container) (*http.Server, error) {
	if c == nil {
		return nil, errors.New("container is required")
	}

	handler := httpapi.NewHandler(c.Handicaps, c.Statistics, c.Profiles, c.Recompute, c.Logger)
	router := httpapi.NewRouter(handler, c.Logger, httpapi.RouterOptions{
		CORSAllowedOrigins: c.Config.CORSAllowedOrigins,
		InternalJobToken:   c.Config.InternalJobToken,
		MetricsHandler:     c.MetricsHandler(),
	})

	server := &http.Server{
		Addr:         c.Config.HTTPAddr,
		Handler:      router,
		ReadTimeout:  c.Config.ReadTimeout,
		WriteTimeout: c.Config.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
