package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"stellium-hq/horarium/pkg/horary/engine"
)

// EvaluationMetrics tracks metrics related to chart evaluation.
//
// Metrics:
//   - horarium_evaluations_total: Total evaluations by verdict
//   - horarium_evaluation_duration_seconds: Evaluation duration
//   - horarium_confidence: Distribution of reported confidence
//   - horarium_paths_selected_total: Selected paths by type
//   - horarium_blockers_fired_total: Fired blockers by kind
type EvaluationMetrics struct {
	// Total evaluations by final verdict
	evaluationsTotal *prometheus.CounterVec

	// Evaluation duration histogram
	evaluationDuration prometheus.Histogram

	// Confidence distribution
	confidence prometheus.Histogram

	// Selected paths by type
	pathsSelected *prometheus.CounterVec

	// Fired blockers by kind
	blockersFired *prometheus.CounterVec

	registry *prometheus.Registry
}

// Config contains configuration for evaluation metrics.
type Config struct {
	// Namespace is the metrics namespace.
	// Default: "horarium".
	Namespace string
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() *Config {
	return &Config{Namespace: "horarium"}
}

// NewEvaluationMetrics creates and registers evaluation metrics with the
// provided registry.
func NewEvaluationMetrics(cfg *Config, registry *prometheus.Registry) *EvaluationMetrics {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	em := &EvaluationMetrics{
		registry: registry,

		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "evaluations_total",
				Help:      "Total number of chart evaluations",
			},
			[]string{"verdict"},
		),

		evaluationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of chart evaluation in seconds",
				// Evaluations are linear in-memory scans (< 1ms)
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 12), // 1µs to 2ms
			},
		),

		confidence: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "confidence",
				Help:      "Distribution of reported verdict confidence",
				Buckets:   prometheus.LinearBuckets(0, 0.1, 11), // 0.0 to 1.0
			},
		),

		pathsSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "paths_selected_total",
				Help:      "Total number of selected paths by type",
			},
			[]string{"path"},
		),

		blockersFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "blockers_fired_total",
				Help:      "Total number of fired blockers by kind",
			},
			[]string{"blocker"},
		),
	}

	registry.MustRegister(
		em.evaluationsTotal,
		em.evaluationDuration,
		em.confidence,
		em.pathsSelected,
		em.blockersFired,
	)

	return em
}

// RecordEvaluation records the outcome of one chart evaluation. Path and
// blocker counters are derived from the proof trail, which lists exactly the
// rules that fired.
func (em *EvaluationMetrics) RecordEvaluation(result *engine.EvaluationResult) {
	em.evaluationsTotal.WithLabelValues(string(result.Verdict)).Inc()
	em.evaluationDuration.Observe(result.EvaluationTime.Seconds())
	em.confidence.Observe(result.Confidence)

	for _, token := range result.Proof {
		if path, ok := strings.CutPrefix(token, "path:"); ok {
			em.pathsSelected.WithLabelValues(path).Inc()
		}
		if blocker, ok := strings.CutPrefix(token, "blocker:"); ok {
			em.blockersFired.WithLabelValues(blocker).Inc()
		}
	}
}
