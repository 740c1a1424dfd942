// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"resource-manager/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resource_manager"

type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	engineersTracked prometheus.Gauge
	overallocated    prometheus.Gauge
	gateRejections   prometheus.Counter
	gateDivergences  prometheus.Counter
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP requests.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		engineersTracked: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "utilization",
			Name:      "engineers",
			Help:      "Engineers with at least one assignment in the last computed snapshot.",
		}),
		overallocated: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "utilization",
			Name:      "overallocated_engineers",
			Help:      "Engineers whose allocation exceeds their capacity in the last computed snapshot.",
		}),
		gateRejections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "capacity",
			Name:      "gate_rejections_total",
			Help:      "Assignment writes rejected by the allocation ceiling.",
		}),
		gateDivergences: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "capacity",
			Name:      "gate_divergences_total",
			Help:      "Accepted assignment writes that leave an engineer above their configured capacity.",
		}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, route string, status int, dur time.Duration) {
	m := getMetrics()
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// ObserveUtilization publishes gauges for a freshly computed utilization snapshot.
func ObserveUtilization(summaries []entities.UtilizationSummary) {
	over := 0
	for _, s := range summaries {
		if s.Overallocated {
			over++
		}
	}
	m := getMetrics()
	m.engineersTracked.Set(float64(len(summaries)))
	m.overallocated.Set(float64(over))
}

// CapacityRejected counts a write refused by the allocation ceiling.
func CapacityRejected() {
	getMetrics().gateRejections.Inc()
}

// CapacityDiverged counts a write accepted by the ceiling but above configured capacity.
func CapacityDiverged() {
	getMetrics().gateDivergences.Inc()
}
