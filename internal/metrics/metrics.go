// Package metrics records run statistics in a Prometheus registry and can
// export them in the text exposition format, for example to a node_exporter
// textfile collector directory.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "dialsim"

// Metrics holds the collectors for a single run. Each instance owns its
// registry, so several runs in one process do not collide.
type Metrics struct {
	registry     *prometheus.Registry
	instructions prometheus.Gauge
	zeros        *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
	selfCheck    *prometheus.GaugeVec
}

// New creates a Metrics with its own registry, including Go runtime metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		instructions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "instructions",
			Help:      "Number of instructions parsed from the input.",
		}),
		zeros: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "zero_count",
			Help:      "Count produced by each counter for the input.",
		}, []string{"counter"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "counter_duration_seconds",
			Help:      "Time spent by each counter on the input.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"counter"}),
		selfCheck: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "self_check_passed",
			Help:      "1 if the counter reproduced the built-in example, 0 otherwise.",
		}, []string{"counter"}),
	}
	m.registry.MustRegister(
		m.instructions,
		m.zeros,
		m.duration,
		m.selfCheck,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveInput records the number of parsed instructions.
func (m *Metrics) ObserveInput(instructions int) {
	m.instructions.Set(float64(instructions))
}

// ObserveCount records a counter's result and how long it took.
func (m *Metrics) ObserveCount(counter string, count int, d time.Duration) {
	m.zeros.WithLabelValues(counter).Set(float64(count))
	m.duration.WithLabelValues(counter).Observe(d.Seconds())
}

// ObserveSelfCheck records whether a counter passed the example check.
func (m *Metrics) ObserveSelfCheck(counter string, passed bool) {
	v := 0.0
	if passed {
		v = 1.0
	}
	m.selfCheck.WithLabelValues(counter).Set(v)
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile atomically writes all metrics to path in the Prometheus
// text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
