package engine

import (
	"fmt"

	"stellium-hq/horarium/pkg/horary"
)

// blockerCheckOrder is the fixed order in which blocker kinds are checked.
var blockerCheckOrder = [...]horary.BlockerKind{
	horary.BlockerProhibition,
	horary.BlockerRefranation,
	horary.BlockerCombustion,
}

// detectBlockers scans the chart's blockers for the recognized kinds in
// fixed check order. The first match blocks and appends its proof token,
// unless the match is combustion with FatalCombustion cleared, in which case
// the combustion is noted but does not block. Unrecognized blocker entries
// are silently ignored. This phase runs regardless of whether a path was
// found: a path can be overridden by a blocker.
func (e *Evaluator) detectBlockers(ev *evaluation) {
	for _, kind := range blockerCheckOrder {
		if !ev.chart.HasBlocker(kind) {
			continue
		}

		if kind == horary.BlockerCombustion && !e.config.FatalCombustion {
			ev.addTraceStep("blocker_detector", "combustion present but not fatal")
			continue
		}

		ev.blocked = true
		ev.appendProof(fmt.Sprintf("blocker:%s", kind))
		ev.addTraceStep("blocker_detector", fmt.Sprintf("blocked by %q", kind))
		return
	}

	if !ev.blocked {
		ev.addTraceStep("blocker_detector", "no blocker fired")
	}
}
