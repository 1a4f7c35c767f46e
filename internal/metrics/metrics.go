// Package metrics declares the Prometheus collectors recorded by the
// bestpath command.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/bestpath/search"
)

// Registry holds every bestpath collector. It is separate from the default
// registry so a textfile dump contains only search metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// SearchesTotal counts searches by mode and outcome
	SearchesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bestpath_searches_total",
			Help: "Total number of searches by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	// SettledNodes tracks how many nodes each search settled
	SettledNodes = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bestpath_settled_nodes",
			Help:    "Number of nodes settled per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"mode"},
	)

	// StaleEntriesTotal counts outdated frontier entries discarded on pop
	StaleEntriesTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "bestpath_stale_entries_total",
			Help: "Total number of stale frontier entries discarded",
		},
	)

	// SearchDurationSeconds measures wall time per search
	SearchDurationSeconds = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bestpath_search_duration_seconds",
			Help:    "Duration of search calls",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"mode"},
	)

	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bestpath_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)
)

// Outcome labels for searches that returned an error.
const (
	OutcomeError   = "error"
	OutcomeAborted = "aborted"
)

// Observe records one finished search. A nil res with a non-nil err is
// counted under OutcomeError or OutcomeAborted.
func Observe(mode string, res *search.Result, err error, dur time.Duration) {
	SearchDurationSeconds.WithLabelValues(mode).Observe(dur.Seconds())
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, search.ErrAborted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome = OutcomeAborted
		}
		SearchesTotal.WithLabelValues(mode, outcome).Inc()
		return
	}

	SearchesTotal.WithLabelValues(mode, res.Kind.String()).Inc()
	SettledNodes.WithLabelValues(mode).Observe(float64(res.Stats.Settled))
	StaleEntriesTotal.Add(float64(res.Stats.Stale))
}

// WriteTextfile dumps the registry in text exposition format, suitable for
// the node_exporter textfile collector.
func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, Registry)
}
