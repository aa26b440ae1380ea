package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ExtractionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fnoutline_extraction_seconds",
		Help:    "Time spent parsing and outlining a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"dialect"})

	DeclarationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fnoutline_declarations_total",
		Help: "Total number of declarations extracted, by declaration kind.",
	}, []string{"kind"})

	RecoveredParsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fnoutline_recovered_parses_total",
		Help: "Total number of files whose parse needed syntax error recovery.",
	}, []string{"dialect"})

	FilesProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fnoutline_files_processed_total",
		Help: "Total number of files outlined.",
	})

	FilesFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fnoutline_files_failed_total",
		Help: "Total number of files skipped because they could not be read or were too large.",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fnoutline_run_seconds",
		Help:    "Wall time of a batch outline run.",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
	})
)
