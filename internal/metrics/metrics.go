// Package metrics exposes Prometheus instrumentation around Analyze:
// call latency, throughput, and diagnostic counts by code and severity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ffanalyze/internal/model"
)

var (
	analyzeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "ffanalyze_analyze_duration_seconds",
			Help: "Time spent in a single Analyze call",
			Buckets: []float64{
				0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
			},
		},
	)

	analyzeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ffanalyze_analyze_total",
			Help: "Total number of Analyze calls",
		},
	)

	diagnosticsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ffanalyze_diagnostics_total",
			Help: "Diagnostics emitted, by code and severity",
		},
		[]string{"code", "severity"},
	)

	parseFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ffanalyze_parse_failures_total",
			Help: "Analyze calls where the command did not parse at all",
		},
	)
)

// Register registers every collector with reg. Call once at process
// startup; a nil reg registers with prometheus.DefaultRegisterer.
func Register(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(analyzeDuration, analyzeTotal, diagnosticsTotal, parseFailuresTotal)
}

// Observe records one Analyze call's outcome: how long it took, and
// what it found.
func Observe(duration time.Duration, parsed bool, diags []model.Diagnostic) {
	analyzeTotal.Inc()
	analyzeDuration.Observe(duration.Seconds())
	if !parsed {
		parseFailuresTotal.Inc()
	}
	for _, d := range diags {
		diagnosticsTotal.WithLabelValues(d.Code, d.Severity.String()).Inc()
	}
}
