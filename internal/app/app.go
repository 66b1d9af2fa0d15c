// Package app wires the meet-sync pipeline together and runs one sync pass.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/liftwatch/meet-sync/internal/config"
	"github.com/liftwatch/meet-sync/internal/listing"
	"github.com/liftwatch/meet-sync/internal/meet"
	"github.com/liftwatch/meet-sync/internal/metrics"
	"github.com/liftwatch/meet-sync/internal/normalize"
	"github.com/liftwatch/meet-sync/internal/retry"
	"github.com/liftwatch/meet-sync/internal/store"
	"github.com/liftwatch/meet-sync/internal/syncer"
)

// fetcher is the upstream listing dependency.
type fetcher interface {
	Fetch(ctx context.Context) ([]listing.Raw, error)
}

// recordSyncer is the store-write dependency.
type recordSyncer interface {
	Run(ctx context.Context, records []meet.Record) syncer.Summary
}

// App holds the long-lived services for one sync run.
type App struct {
	cfg         config.Config
	logger      *zap.Logger
	fetcher     fetcher
	transformer *normalize.Transformer
	syncer      recordSyncer
	store       *store.MeetStore
}

// New initializes all services: the listing fetcher, the Postgres store and
// the syncer on top of it. It fails fast if any of them cannot be built.
// Every log line of the run carries a fresh run_id for correlation.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	metrics.Init()

	f, err := listing.NewFetcher(listing.FetcherConfig{
		BaseURL:   cfg.Source.URL,
		Limit:     cfg.Source.Limit,
		Timeout:   cfg.SourceTimeout(),
		UserAgent: cfg.Source.UserAgent,
	}, logger.Named("fetcher"))
	if err != nil {
		return nil, fmt.Errorf("init fetcher: %w", err)
	}

	st, err := store.New(ctx, store.Config{
		URL:             cfg.DB.URL,
		Password:        cfg.DB.Password,
		Table:           cfg.DB.Table,
		MaxConns:        cfg.DB.MaxConns,
		MaxConnLifetime: cfg.MaxConnLifetime(),
	})
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	return &App{
		cfg:         cfg,
		logger:      logger,
		fetcher:     f,
		transformer: normalize.NewTransformer(logger.Named("transform")),
		syncer: syncer.New(st, syncer.Config{
			WriteDelay: cfg.WriteDelay(),
		}, logger.Named("syncer")),
		store: st,
	}, nil
}

// Close releases the store's resources and flushes the logger.
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
	_ = a.logger.Sync()
}

// Run executes one fetch-transform-sync pass. Per-record failures are
// contained and reported in the summary; only an exhausted fetch retry
// escapes as an error.
func (a *App) Run(ctx context.Context) error {
	started := time.Now()
	stopMetrics := a.startMetricsServer()
	defer stopMetrics()

	listings, err := retry.Do(ctx, a.fetcher.Fetch,
		retry.WithMaxAttempts(a.cfg.Retry.MaxAttempts),
		retry.WithBaseDelay(a.cfg.RetryBaseDelay()),
		retry.WithOnRetry(func(attempt int, delay time.Duration, err error) {
			a.logger.Warn("fetch attempt failed; backing off",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		metrics.ObserveRun("failed")
		return fmt.Errorf("fetch listings: %w", err)
	}
	metrics.ObserveFetched(len(listings))
	a.logger.Info("listings fetched", zap.Int("count", len(listings)))

	if len(listings) == 0 {
		metrics.ObserveRun("success")
		a.logger.Info("nothing to sync")
		return nil
	}

	records := a.transformer.TransformAll(listings)
	metrics.ObserveDropped("unparseable_dates", len(listings)-len(records))

	summary := a.syncer.Run(ctx, records)
	metrics.ObserveRun("success")
	a.logger.Info("sync run finished",
		zap.Int("inserted", summary.Inserted),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// startMetricsServer exposes /metrics and /healthz while the run is in
// flight, when enabled. The returned func shuts the listener down.
func (a *App) startMetricsServer() func() {
	if !a.cfg.Metrics.Enabled {
		return func() {}
	}

	r := chi.NewRouter()
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Metrics.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		a.logger.Info("metrics server started", zap.Int("port", a.cfg.Metrics.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server error", zap.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("metrics server shutdown error", zap.Error(err))
		}
	}
}
