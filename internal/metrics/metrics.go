// Package metrics exposes Prometheus collectors for the meet-sync service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listingsFetchedTotal prometheus.Counter
	listingsDroppedTotal *prometheus.CounterVec
	meetsInsertedTotal   prometheus.Counter
	meetsSkippedTotal    prometheus.Counter
	storeErrorsTotal     *prometheus.CounterVec
	runsTotal            *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		listingsFetchedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meetsync_listings_fetched_total",
				Help: "Total number of raw listings fetched from upstream.",
			},
		)

		listingsDroppedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetsync_listings_dropped_total",
				Help: "Total number of listings dropped before sync, labeled by reason.",
			},
			[]string{"reason"},
		)

		meetsInsertedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meetsync_meets_inserted_total",
				Help: "Total number of meet rows inserted into the store.",
			},
		)

		meetsSkippedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "meetsync_meets_skipped_total",
				Help: "Total number of meets skipped because a row with the same name exists.",
			},
		)

		storeErrorsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetsync_store_errors_total",
				Help: "Total number of store operation failures, labeled by operation.",
			},
			[]string{"op"},
		)

		runsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meetsync_runs_total",
				Help: "Total number of sync runs, labeled by outcome.",
			},
			[]string{"outcome"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveFetched adds to the fetched-listings counter.
func ObserveFetched(n int) {
	if n > 0 {
		listingsFetchedTotal.Add(float64(n))
	}
}

// ObserveDropped adds to the dropped-listings counter for the given reason.
func ObserveDropped(reason string, n int) {
	if n > 0 {
		listingsDroppedTotal.WithLabelValues(reason).Add(float64(n))
	}
}

// ObserveInserted increments the inserted-meets counter.
func ObserveInserted() {
	meetsInsertedTotal.Inc()
}

// ObserveSkipped increments the skipped-meets counter.
func ObserveSkipped() {
	meetsSkippedTotal.Inc()
}

// ObserveStoreError increments the store error counter for the given
// operation ("query" or "insert").
func ObserveStoreError(op string) {
	storeErrorsTotal.WithLabelValues(op).Inc()
}

// ObserveRun increments the run counter for the given outcome.
func ObserveRun(outcome string) {
	runsTotal.WithLabelValues(outcome).Inc()
}
