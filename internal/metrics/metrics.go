// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package metrics records flag container activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/holomush/holoflags/pkg/flag"
)

// Recorder implements flag.Recorder with Prometheus counters.
type Recorder struct {
	Updates       *prometheus.CounterVec
	HandlerPanics *prometheus.CounterVec
	Resolutions   *prometheus.CounterVec
}

var _ flag.Recorder = (*Recorder)(nil)

// NewRecorder creates the flag metrics and registers them with reg.
// Panics if registration fails (following prometheus convention).
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holoflags_flag_updates_total",
				Help: "Total number of local flag changes by flag, scope (root or container) and update type",
			},
			[]string{"flag", "scope", "type"},
		),
		HandlerPanics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holoflags_handler_panics_total",
				Help: "Total number of update handlers that panicked, by flag",
			},
			[]string{"flag"},
		),
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holoflags_unknown_resolutions_total",
				Help: "Total number of pending flag values retried after registration, by outcome",
			},
			[]string{"flag", "outcome"},
		),
	}

	reg.MustRegister(r.Updates)
	reg.MustRegister(r.HandlerPanics)
	reg.MustRegister(r.Resolutions)

	return r
}

// RecordUpdate counts a local add, remove or update.
func (r *Recorder) RecordUpdate(name string, scope flag.Scope, t flag.UpdateType) {
	r.Updates.WithLabelValues(name, string(scope), t.String()).Inc()
}

// RecordHandlerPanic counts a recovered handler panic.
func (r *Recorder) RecordHandlerPanic(name string) {
	r.HandlerPanics.WithLabelValues(name).Inc()
}

// RecordResolution counts a retried pending value.
func (r *Recorder) RecordResolution(name string, outcome flag.ResolveOutcome) {
	r.Resolutions.WithLabelValues(name, string(outcome)).Inc()
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
