package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"stellium-hq/horarium/pkg/horary/engine"
)

// TestNewEvaluationMetrics tests metric creation and registration
func TestNewEvaluationMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	em := NewEvaluationMetrics(nil, registry)

	if em == nil {
		t.Fatal("Expected non-nil metrics")
	}
	if em.registry != registry {
		t.Error("Metrics registry not set correctly")
	}
}

// TestNewEvaluationMetrics_NilRegistry tests that a registry is created when none is given
func TestNewEvaluationMetrics_NilRegistry(t *testing.T) {
	em := NewEvaluationMetrics(nil, nil)

	if em.registry == nil {
		t.Fatal("Expected a registry to be created")
	}
}

// TestRecordEvaluation tests recording of evaluation outcomes
func TestRecordEvaluation(t *testing.T) {
	registry := prometheus.NewRegistry()
	em := NewEvaluationMetrics(nil, registry)

	results := []*engine.EvaluationResult{
		{
			Verdict:        engine.VerdictYes,
			Confidence:     0.6,
			Proof:          []string{"path:translation", "modulator:receptions"},
			EvaluationTime: 50 * time.Microsecond,
		},
		{
			Verdict:        engine.VerdictNo,
			Confidence:     0.2,
			Proof:          []string{"path:direct", "blocker:prohibition"},
			EvaluationTime: 30 * time.Microsecond,
		},
		{
			Verdict:        engine.VerdictNo,
			Confidence:     0.1,
			Proof:          []string{"no-path"},
			EvaluationTime: 10 * time.Microsecond,
		},
	}

	for _, r := range results {
		em.RecordEvaluation(r)
	}

	if got := testutil.ToFloat64(em.evaluationsTotal.WithLabelValues("YES")); got != 1 {
		t.Errorf("YES evaluations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(em.evaluationsTotal.WithLabelValues("NO")); got != 2 {
		t.Errorf("NO evaluations = %v, want 2", got)
	}
	if got := testutil.ToFloat64(em.pathsSelected.WithLabelValues("translation")); got != 1 {
		t.Errorf("translation paths = %v, want 1", got)
	}
	if got := testutil.ToFloat64(em.pathsSelected.WithLabelValues("direct")); got != 1 {
		t.Errorf("direct paths = %v, want 1", got)
	}
	if got := testutil.ToFloat64(em.blockersFired.WithLabelValues("prohibition")); got != 1 {
		t.Errorf("prohibition blockers = %v, want 1", got)
	}
}

// TestRecordEvaluation_NoPathTokens tests that plain proof tokens do not feed the vectors
func TestRecordEvaluation_NoPathTokens(t *testing.T) {
	registry := prometheus.NewRegistry()
	em := NewEvaluationMetrics(nil, registry)

	em.RecordEvaluation(&engine.EvaluationResult{
		Verdict:    engine.VerdictNo,
		Confidence: 0.2,
		Proof:      []string{"no-path", "retrograde-significator"},
	})

	if got := testutil.CollectAndCount(em.pathsSelected); got != 0 {
		t.Errorf("paths vector has %d series, want 0", got)
	}
	if got := testutil.CollectAndCount(em.blockersFired); got != 0 {
		t.Errorf("blockers vector has %d series, want 0", got)
	}
}

// TestHandler tests the exposition endpoint
func TestHandler(t *testing.T) {
	registry := prometheus.NewRegistry()
	em := NewEvaluationMetrics(nil, registry)

	em.RecordEvaluation(&engine.EvaluationResult{
		Verdict:    engine.VerdictYes,
		Confidence: 0.7,
		Proof:      []string{"path:direct"},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	em.Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "horarium_evaluations_total") {
		t.Error("Expected horarium_evaluations_total in exposition output")
	}
	if !strings.Contains(body, "horarium_confidence") {
		t.Error("Expected horarium_confidence in exposition output")
	}
}

// TestCustomNamespace tests that the configured namespace prefixes metric names
func TestCustomNamespace(t *testing.T) {
	registry := prometheus.NewRegistry()
	em := NewEvaluationMetrics(&Config{Namespace: "astro"}, registry)

	em.RecordEvaluation(&engine.EvaluationResult{
		Verdict:    engine.VerdictNo,
		Confidence: 0.2,
		Proof:      []string{"no-path"},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	em.Handler().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "astro_evaluations_total") {
		t.Error("Expected astro_evaluations_total in exposition output")
	}
}
