package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gsi"

// Metrics counts the few things worth watching on an ingestion server. A nil
// *Metrics is valid and counts nothing, which is the default unless a
// registry is configured.
type Metrics struct {
	connsAccepted    prometheus.Counter
	eventsDispatched prometheus.Counter
	framingErrors    prometheus.Counter
	handlerFailures  prometheus.Counter
}

func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		return nil
	}

	factory := promauto.With(registry)

	return &Metrics{
		connsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_accepted_total",
			Help:      "Connections accepted by the listener.",
		}),
		eventsDispatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dispatched_total",
			Help:      "Game state snapshots delivered to handlers.",
		}),
		framingErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "framing_errors_total",
			Help:      "Connections dropped due to malformed or oversized requests.",
		}),
		handlerFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Handler invocations that panicked.",
		}),
	}
}

func (m *Metrics) ConnAccepted() {
	if m != nil {
		m.connsAccepted.Inc()
	}
}

func (m *Metrics) EventDispatched() {
	if m != nil {
		m.eventsDispatched.Inc()
	}
}

func (m *Metrics) FramingError() {
	if m != nil {
		m.framingErrors.Inc()
	}
}

func (m *Metrics) HandlerFailures(n int) {
	if m != nil && n > 0 {
		m.handlerFailures.Add(float64(n))
	}
}
