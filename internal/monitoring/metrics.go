// Package monitoring exposes Prometheus metrics for program loads and renders.
package monitoring

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load statuses.
const (
	LoadSuccess = "success"
	LoadFailure = "failure"
)

var (
	programLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "program_loads_total",
			Help: "Program loads by source kind and outcome",
		},
		[]string{"source", "status"},
	)

	programAgendas = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "program_agendas",
			Help: "Agendas in the current program snapshot",
		},
	)

	programRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "program_renders_total",
			Help: "Program renders by result (events, no_data, no_match)",
		},
		[]string{"result"},
	)
)

// RecordLoad counts one load attempt and updates the snapshot gauge.
// source is a source description; only its kind becomes a label.
func RecordLoad(source, status string, agendas int) {
	programLoads.WithLabelValues(SourceKind(source), status).Inc()
	programAgendas.Set(float64(agendas))
}

// RecordRender counts one render by its result.
func RecordRender(result string) {
	if result == "" {
		result = "events"
	}
	programRenders.WithLabelValues(result).Inc()
}

// SourceKind returns the scheme-like prefix of a source description,
// e.g. "file" for "file:program.json" and "https" for a URL.
func SourceKind(source string) string {
	if i := strings.Index(source, ":"); i > 0 {
		return source[:i]
	}
	return "unknown"
}
