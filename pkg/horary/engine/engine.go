package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stellium-hq/horarium/pkg/horary"
)

// Evaluator judges horary charts. It is stateless across evaluations and
// safe for concurrent use as long as each call owns its chart.
type Evaluator struct {
	// config contains engine configuration
	config *EngineConfig

	// logger for structured logging
	logger *slog.Logger
}

// NewEvaluator creates a new verdict engine.
func NewEvaluator(config *EngineConfig, logger *slog.Logger) (*Evaluator, error) {
	if config == nil {
		config = DefaultEngineConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Evaluator{
		config: config,
		logger: logger,
	}, nil
}

// Evaluate runs the full pipeline over the chart and returns the verdict.
//
// The chart is mutated in place (normalization defaults and the
// paths/rejected-paths partition); the returned result is immutable. The
// pipeline has no suspension points, so ctx is only consulted for logging
// attributes, never for cancellation.
func (e *Evaluator) Evaluate(ctx context.Context, chart *horary.Chart) (*EvaluationResult, error) {
	_ = ctx

	if chart == nil {
		return nil, ErrNilChart
	}

	if err := validateTimeline(chart); err != nil {
		return nil, err
	}

	ev := &evaluation{
		chart: chart,
		start: time.Now(),
	}
	if e.config.EnableTrace {
		ev.trace = &EvaluationTrace{}
	}

	e.normalize(ev)
	e.findPath(ev)
	e.detectBlockers(ev)

	// Fallback only fires on the genuine absence of both signals.
	if !ev.baseline && !ev.blocked {
		e.recordNoPath(ev)
	}

	confidence := e.modulate(ev)
	result := e.compose(ev, confidence)

	e.logger.Debug("chart evaluated",
		"chart_id", chart.ID,
		"verdict", result.Verdict,
		"confidence", result.Confidence,
		"proof_len", len(result.Proof),
		"duration", result.EvaluationTime,
	)

	return result, nil
}

// validateTimeline rejects timeline elements that cannot be interpreted at
// all. Unrecognized (but present) types and statuses are tolerated; an event
// carrying neither a type nor a status is a structural defect in the input.
func validateTimeline(chart *horary.Chart) error {
	for i, event := range chart.AspectTimeline {
		if event.Type == "" && event.Status == "" {
			return &InputShapeError{
				Index:   i,
				Message: "missing both type and status",
			}
		}
	}
	return nil
}
