// Package metrics exposes pipeline run aggregates to prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feral-file/founder-scout/internal/domain"
)

const namespace = "scout"

// Metrics holds the pipeline collectors. A nil *Metrics is a no-op.
type Metrics struct {
	FoundersEmbedded prometheus.Counter
	FoundersScored   prometheus.Counter
	ThemesUpserted   prometheus.Counter
	AlertsSent       prometheus.Counter
	EventsFired      prometheus.Counter
	PhaseFailures    *prometheus.CounterVec
	PhaseDuration    *prometheus.HistogramVec
	Runs             *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FoundersEmbedded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "founders_embedded_total",
			Help:      "Founders whose embedding was refreshed",
		}),
		FoundersScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "founders_scored_total",
			Help:      "Score records written",
		}),
		ThemesUpserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "themes_upserted_total",
			Help:      "Themes created or updated by clustering",
		}),
		AlertsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_sent_total",
			Help:      "Successful alert deliveries across channels",
		}),
		EventsFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_fired_total",
			Help:      "Emergence events recorded",
		}),
		PhaseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_failures_total",
			Help:      "Pipeline phases that failed and were rolled back",
		}, []string{"phase"}),
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of each pipeline phase",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 180, 600},
		}, []string{"phase"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Finished pipeline runs by status",
		}, []string{"status"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.FoundersEmbedded,
			m.FoundersScored,
			m.ThemesUpserted,
			m.AlertsSent,
			m.EventsFired,
			m.PhaseFailures,
			m.PhaseDuration,
			m.Runs,
		)
	}
	return m
}

// ObservePhase records a phase duration and, when it failed, a failure
func (m *Metrics) ObservePhase(phase domain.Phase, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.PhaseDuration.WithLabelValues(string(phase)).Observe(d.Seconds())
	if err != nil {
		m.PhaseFailures.WithLabelValues(string(phase)).Inc()
	}
}

// AddPhaseCount adds the aggregate a successful phase produced
func (m *Metrics) AddPhaseCount(phase domain.Phase, n int) {
	if m == nil || n <= 0 {
		return
	}
	switch phase {
	case domain.PhaseEmbed:
		m.FoundersEmbedded.Add(float64(n))
	case domain.PhaseCluster:
		m.ThemesUpserted.Add(float64(n))
	case domain.PhaseScore:
		m.FoundersScored.Add(float64(n))
	case domain.PhaseAlert:
		m.AlertsSent.Add(float64(n))
	case domain.PhaseAnomaly:
		m.EventsFired.Add(float64(n))
	}
}

// RunFinished counts a finished run
func (m *Metrics) RunFinished(status domain.RunStatus) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(string(status)).Inc()
}

// Handler serves the collectors registered with gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
