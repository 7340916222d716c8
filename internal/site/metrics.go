package site

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the dev server's Prometheus metrics on a private registry.
type metrics struct {
	registry *prometheus.Registry

	buildsTotal   *prometheus.CounterVec
	buildDuration prometheus.Histogram
	sections      prometheus.Gauge
	functions     prometheus.Gauge
	warnings      prometheus.Gauge
	reloadClients prometheus.Gauge
	reloadsSent   prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		buildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apidoc_builds_total",
				Help: "Total number of site builds",
			},
			[]string{"result"},
		),
		buildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "apidoc_build_duration_seconds",
				Help:    "Site build duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		sections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apidoc_sections_rendered",
			Help: "Collapsible sections in the last successful build",
		}),
		functions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apidoc_functions_rendered",
			Help: "Functions documented in the last successful build",
		}),
		warnings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apidoc_build_warnings",
			Help: "Warnings raised by the last successful build",
		}),
		reloadClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "apidoc_reload_clients",
			Help: "Connected live reload clients",
		}),
		reloadsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apidoc_reloads_sent_total",
			Help: "Total number of reload notifications delivered",
		}),
	}

	m.registry.MustRegister(
		m.buildsTotal,
		m.buildDuration,
		m.sections,
		m.functions,
		m.warnings,
		m.reloadClients,
		m.reloadsSent,
	)
	return m
}

// observeBuild records the outcome of a build.
func (m *metrics) observeBuild(res *Result, err error, d time.Duration) {
	m.buildDuration.Observe(d.Seconds())
	if err != nil {
		m.buildsTotal.WithLabelValues("error").Inc()
		return
	}
	m.buildsTotal.WithLabelValues("success").Inc()
	m.sections.Set(float64(res.Stats.Sections))
	m.functions.Set(float64(res.Stats.Functions))
	m.warnings.Set(float64(len(res.Warnings)))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
