package engine

import (
	"time"

	"stellium-hq/horarium/pkg/horary"
)

// Verdict is the final yes/no judgement of a horary question.
type Verdict string

const (
	// VerdictYes affirms the queried outcome.
	VerdictYes Verdict = "YES"

	// VerdictNo denies the queried outcome.
	VerdictNo Verdict = "NO"
)

// EvaluationResult is the immutable output of one evaluation run.
type EvaluationResult struct {
	// Verdict is YES iff a qualifying path was found and no blocker fired.
	Verdict Verdict

	// Confidence is the final confidence, clamped to [0, 1] and rounded
	// to two decimal places.
	Confidence float64

	// Proof is the ordered audit trail of rule tokens that fired, in
	// firing order.
	Proof []string

	// EvaluationTime is the total time taken to evaluate the chart.
	EvaluationTime time.Duration

	// Trace contains per-phase trace steps (if tracing is enabled).
	Trace *EvaluationTrace
}

// Affirmed reports whether the verdict is YES.
func (r *EvaluationResult) Affirmed() bool {
	return r.Verdict == VerdictYes
}

// EvaluationTrace records per-phase steps during evaluation for debugging.
type EvaluationTrace struct {
	// Steps contains individual trace steps.
	Steps []*TraceStep

	// TotalTime is the total evaluation time.
	TotalTime time.Duration
}

// TraceStep represents a single step in the evaluation trace.
type TraceStep struct {
	// Phase identifies the pipeline phase ("normalize", "path_finder",
	// "blocker_detector", "fallback", "modulator", "composer").
	Phase string

	// Details contains phase-specific details.
	Details string

	// Timestamp is when this step occurred.
	Timestamp time.Time
}

// evaluation is the accumulator threaded through the pipeline phases. The
// proof trail lives here rather than on the chart so that appends stay
// explicit and ordered; the chart itself only receives its partition fields
// and normalization defaults.
type evaluation struct {
	chart    *horary.Chart
	proof    []string
	baseline bool
	bonus    float64
	blocked  bool
	trace    *EvaluationTrace
	start    time.Time
}

// appendProof appends a rule token to the proof trail. Tokens are never
// removed or reordered.
func (ev *evaluation) appendProof(token string) {
	ev.proof = append(ev.proof, token)
}

// addTraceStep records a trace step (if tracing is enabled).
func (ev *evaluation) addTraceStep(phase, details string) {
	if ev.trace == nil {
		return
	}
	ev.trace.Steps = append(ev.trace.Steps, &TraceStep{
		Phase:     phase,
		Details:   details,
		Timestamp: time.Now(),
	})
}
