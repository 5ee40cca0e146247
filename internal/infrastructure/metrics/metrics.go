// Package metrics holds the Prometheus collectors of the workflow.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	transitions    *prometheus.CounterVec
	failures       *prometheus.CounterVec
	payments       *prometheus.CounterVec
	documents      *prometheus.CounterVec
	numberConflict prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "job_transitions_total",
			Help:      "Stage records applied, by stage and whether the job advanced or the record was amended.",
		}, []string{"stage", "mode"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "job_transition_failures_total",
			Help:      "Rejected stage records, by stage and error class.",
		}, []string{"stage", "reason"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "invoice_payments_total",
			Help:      "Invoice payments by provider status.",
		}, []string{"status"}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "documents_rendered_total",
			Help:      "Documents composed or rendered, by kind and format.",
		}, []string{"kind", "format"}),
		numberConflict: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workshop",
			Name:      "number_conflicts_total",
			Help:      "Saves rejected because a number was taken or the job changed concurrently.",
		}),
	}
	reg.MustRegister(m.transitions, m.failures, m.payments, m.documents, m.numberConflict)
	return m
}

func (m *Metrics) Transition(stage, mode string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(stage, mode).Inc()
}

func (m *Metrics) TransitionFailed(stage, reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(stage, reason).Inc()
}

func (m *Metrics) Payment(status string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(status).Inc()
}

func (m *Metrics) Document(kind, format string) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(kind, format).Inc()
}

func (m *Metrics) Conflict() {
	if m == nil {
		return
	}
	m.numberConflict.Inc()
}
