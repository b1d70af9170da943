// Package observability exposes Prometheus collectors for the ordering
// flow. Metrics are optional: a nil *Metrics disables collection and every
// method is nil-safe.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/samovar/pkg/domain"
)

// Metrics holds the flow-level collectors.
type Metrics struct {
	events     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	orders     prometheus.Counter
	orderValue prometheus.Counter
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "samovar",
			Name:      "events_total",
			Help:      "Inbound user events by kind.",
		}, []string{"kind"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "samovar",
			Name:      "rejections_total",
			Help:      "Rejected events by reason code.",
		}, []string{"reason"}),
		orders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "samovar",
			Name:      "orders_total",
			Help:      "Orders created at checkout.",
		}),
		orderValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "samovar",
			Name:      "order_value_total",
			Help:      "Cumulative value of created orders, in currency units.",
		}),
	}
	reg.MustRegister(m.events, m.rejections, m.orders, m.orderValue)
	return m
}

// ObserveEvent counts one inbound event.
func (m *Metrics) ObserveEvent(kind domain.EventKind) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(string(kind)).Inc()
}

// ObserveRejection counts one rejected event.
func (m *Metrics) ObserveRejection(reason domain.RejectReason) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(string(reason)).Inc()
}

// ObserveOrder counts one created order and its value.
func (m *Metrics) ObserveOrder(o domain.Order) {
	if m == nil {
		return
	}
	m.orders.Inc()
	m.orderValue.Add(float64(o.Total))
}

// RegisterSessionGauge registers a gauge tracking the number of active
// sessions, sampled through count on scrape.
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "samovar",
		Name:      "active_sessions",
		Help:      "Sessions currently held in the store.",
	}, func() float64 {
		return float64(count())
	}))
}
