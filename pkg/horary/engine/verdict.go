package engine

import (
	"math"
	"time"
)

// compose assembles the immutable result from the accumulated evaluation
// state. The verdict is YES iff a qualifying path was found and no blocker
// fired; confidence is rounded to two decimal places; the proof trail is
// copied so the result does not alias the accumulator.
func (e *Evaluator) compose(ev *evaluation, confidence float64) *EvaluationResult {
	verdict := VerdictNo
	if ev.baseline && !ev.blocked {
		verdict = VerdictYes
	}

	proof := make([]string, len(ev.proof))
	copy(proof, ev.proof)

	result := &EvaluationResult{
		Verdict:        verdict,
		Confidence:     roundConfidence(confidence),
		Proof:          proof,
		EvaluationTime: time.Since(ev.start),
		Trace:          ev.trace,
	}

	if result.Trace != nil {
		result.Trace.TotalTime = result.EvaluationTime
	}

	return result
}

// roundConfidence rounds to two decimal places.
func roundConfidence(confidence float64) float64 {
	return math.Round(confidence*100) / 100
}
