// Package metrics exposes Prometheus counters and histograms for extraction runs and inbox imports.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	extractions        *prometheus.CounterVec
	extractionDuration *prometheus.HistogramVec
	imports            *prometheus.CounterVec
}

// New registers every metric on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		extractions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raven_extractions_total",
				Help: "Files dispatched to an extractor, by media kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		extractionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "raven_extraction_duration_seconds",
				Help:    "Time spent extracting text from one file",
				Buckets: []float64{0.05, 0.25, 1, 5, 15, 60, 300},
			},
			[]string{"kind"},
		),
		imports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raven_inbox_imports_total",
				Help: "Files picked up by the inbox watcher, by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) ObserveExtraction(kind, outcome string, elapsed time.Duration) {
	m.extractions.WithLabelValues(kind, outcome).Inc()
	m.extractionDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveImport(outcome string) {
	m.imports.WithLabelValues(outcome).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
