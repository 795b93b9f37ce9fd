package engine

import (
	"fmt"

	"stellium-hq/horarium/pkg/horary"
)

const (
	// confidenceAffirmed seeds confidence when the outcome is affirmed and
	// unblocked.
	confidenceAffirmed = 0.5

	// confidenceDenied seeds confidence otherwise.
	confidenceDenied = 0.2

	// retrogradePenalty is subtracted when a significator is retrograde.
	retrogradePenalty = 1.0
)

// proofNoPath is the fallback proof token recorded when neither a path was
// found nor a blocker fired.
const proofNoPath = "no-path"

// recordNoPath records the genuine absence of both signals. Pure side
// effect, unconditional success.
func (e *Evaluator) recordNoPath(ev *evaluation) {
	ev.appendProof(proofNoPath)
	ev.addTraceStep("fallback", "no path and no blocker")
}

// modulate seeds the confidence from the final affirmation state, adds the
// path bonus and the dignities/receptions/benefics weights, subtracts the
// retrograde penalty, and clamps the result to [0, 1]. It does not touch the
// proof trail.
func (e *Evaluator) modulate(ev *evaluation) float64 {
	confidence := confidenceDenied
	if ev.baseline && !ev.blocked {
		confidence = confidenceAffirmed
	}
	confidence += ev.bonus

	confidence += ev.chart.Modulator(horary.ModulatorDignities)
	confidence += ev.chart.Modulator(horary.ModulatorReceptions)
	confidence += ev.chart.Modulator(horary.ModulatorBenefics)

	if ev.chart.Retrograde {
		confidence -= retrogradePenalty
	}

	confidence = clamp(confidence)
	ev.addTraceStep("modulator", fmt.Sprintf("confidence %.4f", confidence))
	return confidence
}

// clamp restricts confidence to the valid probability range [0, 1].
func clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
