// Package metrics exposes optional Prometheus instrumentation for the
// command executor: one CounterVec per concern, a private registry,
// MustRegister at construction. Only the handful of game-submission
// counters the engine can actually produce are defined — no
// HTTP/WebSocket surface exists here to instrument.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the Prometheus metrics a Dispatcher reports against.
// A nil *Recorder is always safe to call the Record* methods on — each
// is a no-op in that case — so wiring it into Dispatcher never requires
// a host to opt in. Handler requires a non-nil Recorder.
type Recorder struct {
	actionsTotal  *prometheus.CounterVec
	eventsTotal   *prometheus.CounterVec
	undoTotal     prometheus.Counter
	combatsEnded  *prometheus.CounterVec
	registry      *prometheus.Registry
}

// NewRecorder builds and registers a fresh Recorder against its own
// private registry rather than the global default registry, so
// multiple engine instances (and repeated test runs) never collide on
// collector registration.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hexmarch_actions_total",
				Help: "Total number of submitted actions by kind and outcome",
			},
			[]string{"action_kind", "status"},
		),
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hexmarch_events_total",
				Help: "Total number of events emitted by type",
			},
			[]string{"event_type"},
		),
		undoTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hexmarch_undo_applied_total",
				Help: "Total number of undo commands applied",
			},
		),
		combatsEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hexmarch_combats_ended_total",
				Help: "Total number of combats resolved by outcome",
			},
			[]string{"victory"},
		),
		registry: registry,
	}

	r.registry.MustRegister(r.actionsTotal, r.eventsTotal, r.undoTotal, r.combatsEnded)
	return r
}

// Handler returns an HTTP handler exposing the recorder's registry in
// the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RecordAction records one submitted action outcome.
func (r *Recorder) RecordAction(actionKind, status string) {
	if r == nil {
		return
	}
	r.actionsTotal.WithLabelValues(actionKind, status).Inc()
}

// RecordEvent records one emitted event's type.
func (r *Recorder) RecordEvent(eventType string) {
	if r == nil {
		return
	}
	r.eventsTotal.WithLabelValues(eventType).Inc()
}

// RecordUndo records one applied undo command.
func (r *Recorder) RecordUndo() {
	if r == nil {
		return
	}
	r.undoTotal.Inc()
}

// RecordCombatEnded records one combat resolution's outcome.
func (r *Recorder) RecordCombatEnded(victory bool) {
	if r == nil {
		return
	}
	label := "defeat"
	if victory {
		label = "victory"
	}
	r.combatsEnded.WithLabelValues(label).Inc()
}
