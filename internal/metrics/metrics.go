// SPDX-License-Identifier: EPL-2.0

// Package metrics records batch outcomes in a private Prometheus registry
// and writes them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for FilesTotal.
const (
	ResultConverted = "converted"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
)

// Metrics contains the Prometheus metrics of one batch run.
type Metrics struct {
	registry *prometheus.Registry

	FilesTotal         *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
	LastRunTimestamp   prometheus.Gauge
}

// New creates the metrics and registers them in a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		FilesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "towav16_files_total",
			Help: "Number of candidate files by outcome",
		}, []string{"result"}),
		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "towav16_conversion_duration_seconds",
			Help:    "Time spent in the encoder per file",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "towav16_last_run_timestamp_seconds",
			Help: "Unix time at which the last batch finished",
		}),
	}

	// Export every result series, even at zero.
	for _, r := range []string{ResultConverted, ResultSkipped, ResultFailed} {
		m.FilesTotal.WithLabelValues(r)
	}

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Converted records a successful conversion that took d.
func (m *Metrics) Converted(d time.Duration) {
	m.FilesTotal.WithLabelValues(ResultConverted).Inc()
	m.ConversionDuration.Observe(d.Seconds())
}

// Failed records a failed conversion that took d.
func (m *Metrics) Failed(d time.Duration) {
	m.FilesTotal.WithLabelValues(ResultFailed).Inc()
	m.ConversionDuration.Observe(d.Seconds())
}

// Skipped records a candidate whose output already existed.
func (m *Metrics) Skipped() {
	m.FilesTotal.WithLabelValues(ResultSkipped).Inc()
}

// Finish stamps the end of the run.
func (m *Metrics) Finish(at time.Time) {
	m.LastRunTimestamp.Set(float64(at.Unix()))
}

// WriteTextfile writes every metric to path. The file is replaced
// atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
