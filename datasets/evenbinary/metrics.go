package evenbinary

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts generated batches. A nil *Metrics records nothing.
//
// Metrics exposed (namespace "evenbinary"):
//
//   - batches_total: batches generated successfully
//   - samples_total: samples in those batches
//   - overflow_total: values wider than the padding width, emitted or rejected
type Metrics struct {
	batches  prometheus.Counter
	samples  prometheus.Counter
	overflow prometheus.Counter
}

// NewMetrics creates and registers the generator counters with registry.
// A nil registry means prometheus.DefaultRegisterer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		batches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "evenbinary",
			Name:      "batches_total",
			Help:      "Batches generated successfully",
		}),
		samples: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "evenbinary",
			Name:      "samples_total",
			Help:      "Samples contained in generated batches",
		}),
		overflow: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "evenbinary",
			Name:      "overflow_total",
			Help:      "Values needing more binary digits than the padding width",
		}),
	}
}

// observe records one batch attempt; samples is 0 when the batch was rejected.
func (m *Metrics) observe(samples, overflow int) {
	if m == nil {
		return
	}
	if samples > 0 {
		m.batches.Inc()
		m.samples.Add(float64(samples))
	}
	m.overflow.Add(float64(overflow))
}
