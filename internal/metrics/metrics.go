// Package metrics provides Prometheus metrics for document imports and searches.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	ImportsTotal        *prometheus.CounterVec
	ImportFailuresTotal *prometheus.CounterVec
	SearchesTotal       *prometheus.CounterVec
	SearchResultsTotal  prometheus.Counter
	DocumentsStored     prometheus.Gauge
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ImportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docmanager_imports_total",
				Help: "Total number of imported documents by type",
			},
			[]string{"type"},
		),
		ImportFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docmanager_import_failures_total",
				Help: "Total number of failed imports by reason",
			},
			[]string{"reason"},
		),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docmanager_searches_total",
				Help: "Total number of searches by status",
			},
			[]string{"status"},
		),
		SearchResultsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docmanager_search_results_total",
				Help: "Total number of documents returned by searches",
			},
		),
		DocumentsStored: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "docmanager_documents",
				Help: "Number of documents in the collection",
			},
		),
	}

	m.registry.MustRegister(
		m.ImportsTotal,
		m.ImportFailuresTotal,
		m.SearchesTotal,
		m.SearchResultsTotal,
		m.DocumentsStored,
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
