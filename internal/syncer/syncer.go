// Package syncer writes canonical meet records into the store, one at a
// time, skipping names that already exist.
package syncer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/liftwatch/meet-sync/internal/meet"
	"github.com/liftwatch/meet-sync/internal/metrics"
)

// Store is the slice of the meet store the syncer depends on.
type Store interface {
	FindByName(ctx context.Context, name string) (bool, error)
	Insert(ctx context.Context, rec meet.Record) error
}

// Config controls Syncer pacing.
type Config struct {
	// WriteDelay is the fixed pause between successive write attempts,
	// bounding the request rate against the store.
	WriteDelay time.Duration
}

// Summary tallies the outcome of one sync pass.
type Summary struct {
	Inserted int
	Skipped  int
	Failed   int
}

// Syncer performs the sequential existence-check-then-insert loop.
type Syncer struct {
	store  Store
	delay  time.Duration
	logger *zap.Logger
}

// New constructs a Syncer.
func New(store Store, cfg Config, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{
		store:  store,
		delay:  cfg.WriteDelay,
		logger: logger,
	}
}

// Run processes records in order. Every per-record failure is contained:
// a failed existence check falls through to the insert attempt, and a failed
// insert is logged and tallied without aborting the batch. The store's
// uniqueness constraint on name remains the correctness backstop throughout.
func (s *Syncer) Run(ctx context.Context, records []meet.Record) Summary {
	var summary Summary
	wroteBefore := false

	for _, rec := range records {
		exists, err := s.store.FindByName(ctx, rec.Name)
		if err != nil {
			// Availability over strict consistency: a failed lookup is
			// treated as not-found and the insert is attempted anyway. The
			// uniqueness constraint rejects the row if the lookup was wrong.
			metrics.ObserveStoreError("query")
			s.logger.Warn("existence check failed; treating as not found",
				zap.String("name", rec.Name),
				zap.String("external_id", rec.ExternalID),
				zap.Error(err),
			)
			exists = false
		}
		if exists {
			summary.Skipped++
			metrics.ObserveSkipped()
			s.logger.Debug("meet already present; skipping",
				zap.String("name", rec.Name),
			)
			continue
		}

		if wroteBefore && !s.pause(ctx) {
			s.logger.Warn("sync interrupted", zap.Error(ctx.Err()))
			return summary
		}
		wroteBefore = true

		if err := s.store.Insert(ctx, rec); err != nil {
			summary.Failed++
			metrics.ObserveStoreError("insert")
			s.logger.Error("insert failed",
				zap.String("name", rec.Name),
				zap.String("external_id", rec.ExternalID),
				zap.Error(err),
			)
			continue
		}

		summary.Inserted++
		metrics.ObserveInserted()
		s.logger.Info("meet inserted",
			zap.String("name", rec.Name),
			zap.String("start_date", rec.StartDate),
			zap.String("end_date", rec.EndDate),
		)
	}

	return summary
}

// pause sleeps the configured write delay, returning false if the context
// finished first.
func (s *Syncer) pause(ctx context.Context) bool {
	if s.delay <= 0 {
		return true
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
