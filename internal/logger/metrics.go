package logger

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricsNamespace = "pool_standings"

// Metrics tracks operational metrics including counters, gauges, and timings.
// All operations are thread-safe.
//
// Each kind is one Prometheus vector labelled by metric name, so callers can use
// dotted names ("feed.rows_skipped") without registering anything up front.
type Metrics struct {
	registry *prometheus.Registry
	counters *prometheus.CounterVec
	gauges   *prometheus.GaugeVec
	timings  *prometheus.HistogramVec
}

var defaultMetrics *Metrics

func init() {
	defaultMetrics = NewMetrics()
}

// NewMetrics creates a metrics tracker with its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_total",
			Help:      "Count of named events.",
		}, []string{"name"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "gauge",
			Help:      "Point-in-time values by name.",
		}, []string{"name"}),
		timings: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "duration_seconds",
			Help:      "Durations of named operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"name"}),
	}
	m.registry.MustRegister(m.counters, m.gauges, m.timings)
	return m
}

// IncrCounter increments a counter by 1. If the counter doesn't exist, it is initialized to 1.
func (m *Metrics) IncrCounter(name string) {
	m.counters.WithLabelValues(name).Inc()
}

// AddCounter increments a counter by n
func (m *Metrics) AddCounter(name string, n int) {
	if n <= 0 {
		return
	}
	m.counters.WithLabelValues(name).Add(float64(n))
}

// SetGauge sets a gauge to the specified value, overwriting any previous value.
func (m *Metrics) SetGauge(name string, value float64) {
	m.gauges.WithLabelValues(name).Set(value)
}

// RecordTiming records a duration measurement.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.timings.WithLabelValues(name).Observe(duration.Seconds())
}

// GetSnapshot returns a snapshot of all metrics as a map containing:
//   - "counters": map of counter names to values
//   - "gauges": map of gauge names to values
//   - "timings": map of timing names to statistics (count, total, average)
func (m *Metrics) GetSnapshot() map[string]interface{} {
	counters := make(map[string]int64)
	gauges := make(map[string]float64)
	timings := make(map[string]map[string]interface{})

	families, err := m.registry.Gather()
	if err != nil {
		Warn("Gathering metrics failed", Fields{"error": err.Error()})
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := labelValue(metric, "name")
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				counters[name] = int64(metric.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				gauges[name] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				count := h.GetSampleCount()
				total := time.Duration(h.GetSampleSum() * float64(time.Second)).Round(time.Microsecond)
				stats := map[string]interface{}{
					"count": count,
					"total": total.String(),
				}
				if count > 0 {
					stats["average"] = (total / time.Duration(count)).Round(time.Microsecond).String()
				}
				timings[name] = stats
			}
		}
	}

	return map[string]interface{}{
		"counters": counters,
		"gauges":   gauges,
		"timings":  timings,
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format, replacing the
// file atomically so a node_exporter textfile collector never reads a partial write.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func labelValue(metric *dto.Metric, label string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == label {
			return lp.GetValue()
		}
	}
	return ""
}

// Package-level metrics functions using the default metrics tracker

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// AddCounter adds n to a counter on the default metrics tracker.
func AddCounter(name string, n int) {
	defaultMetrics.AddCounter(name, n)
}

// SetGauge sets a gauge on the default metrics tracker.
func SetGauge(name string, value float64) {
	defaultMetrics.SetGauge(name, value)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, duration time.Duration) {
	defaultMetrics.RecordTiming(name, duration)
}

// GetMetricsSnapshot returns a snapshot of all metrics from the default tracker.
func GetMetricsSnapshot() map[string]interface{} {
	return defaultMetrics.GetSnapshot()
}

// WriteMetricsTextfile writes the default tracker to path.
func WriteMetricsTextfile(path string) error {
	return defaultMetrics.WriteTextfile(path)
}
