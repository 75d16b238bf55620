// Package metrics provides Prometheus metrics for the fiprank pipeline.
//
// The pipeline runs once per invocation and never listens on a port, so
// metrics are exported by writing a textfile for node_exporter's textfile
// collector instead of being scraped.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Conversion
	linesParsed    prometheus.Counter
	namesRepaired  prometheus.Counter
	snapshotWrites *prometheus.CounterVec

	// Store
	snapshotsLoaded prometheus.Counter
	recordsLoaded   prometheus.Counter
	loadDuration    prometheus.Histogram

	// History
	historyMerges    prometheus.Counter
	historyMatched   prometheus.Counter
	historyUnmatched prometheus.Counter

	// Errors
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Initialize global metrics on a private registry to avoid default Go metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fiprank",
		subsystem:        "pipeline",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.linesParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lines_parsed_total",
		Help:      "Total number of data lines normalized into rows",
	})

	m.namesRepaired = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "names_repaired_total",
		Help:      "Total number of names changed by glyph repair",
	})

	m.snapshotWrites = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "snapshot_writes_total",
			Help:      "Snapshot persist attempts by result (written, skipped)",
		},
		[]string{"result"},
	)

	m.snapshotsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshots_loaded_total",
		Help:      "Total number of snapshots loaded from disk",
	})

	m.recordsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded_total",
		Help:      "Total number of records loaded across all snapshots",
	})

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_load_duration_milliseconds",
		Help:      "Snapshot load duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.historyMerges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_merges_total",
		Help:      "Total number of prior snapshots merged into history",
	})

	m.historyMatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_matched_total",
		Help:      "Records that received a history entry",
	})

	m.historyUnmatched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_unmatched_total",
		Help:      "Records left untouched because the prior snapshot lacked them",
	})

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)
}

// Registry returns the registry the manager's collectors are registered on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics of the manager to path in the text
// exposition format.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}

// Default returns the global manager.
func Default() *Manager { return globalManager }

// WriteTextfile writes the global metrics to path.
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

// RecordLinesParsed adds n normalized data lines.
func RecordLinesParsed(n int) {
	globalManager.linesParsed.Add(float64(n))
}

// RecordNamesRepaired adds n names changed by glyph repair.
func RecordNamesRepaired(n int) {
	globalManager.namesRepaired.Add(float64(n))
}

// RecordSnapshotWrite counts a persist attempt; written=false means skipped.
func RecordSnapshotWrite(written bool) {
	result := "skipped"
	if written {
		result = "written"
	}
	globalManager.snapshotWrites.WithLabelValues(result).Inc()
}

// RecordSnapshotLoaded counts a loaded snapshot and its records.
func RecordSnapshotLoaded(records int) {
	globalManager.snapshotsLoaded.Inc()
	globalManager.recordsLoaded.Add(float64(records))
}

// RecordLoadDuration records a snapshot load duration in milliseconds.
func RecordLoadDuration(ms float64) {
	globalManager.loadDuration.Observe(ms)
}

// RecordHistoryMerge counts one merge call and its outcome.
func RecordHistoryMerge(matched, unmatched int) {
	globalManager.historyMerges.Inc()
	globalManager.historyMatched.Add(float64(matched))
	globalManager.historyUnmatched.Add(float64(unmatched))
}

// RecordErrorByComponent increments the error counter for a component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}
