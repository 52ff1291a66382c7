package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics are registered on a per-App registry so several Apps can live in
// one process.
type metrics struct {
	registry *prometheus.Registry

	ticks     prometheus.Counter
	started   *prometheus.CounterVec
	completed *prometheus.CounterVec
	queued    prometheus.Gauge
	active    prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Name: "tickseq_ticks_total",
			Help: "Ticks executed by the run loop.",
		}),
		started: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tickseq_actions_started_total",
			Help: "Actions moved from the ready queue to the active set.",
		}, []string{"kind"}),
		completed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tickseq_actions_completed_total",
			Help: "Actions that reported completion.",
		}, []string{"kind"}),
		queued: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tickseq_actions_queued",
			Help: "Actions waiting in the ready queue after the last tick.",
		}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tickseq_actions_active",
			Help: "Actions in the active set after the last tick.",
		}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
