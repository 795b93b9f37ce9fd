package engine

import "stellium-hq/horarium/pkg/horary"

// normalize ensures required chart fields exist with safe defaults and marks
// the chart normalized. All operations are additive and idempotent: a second
// pass over the same chart produces the same shape. This phase never fails.
func (e *Evaluator) normalize(ev *evaluation) {
	chart := ev.chart

	if chart.Rulers == nil {
		chart.Rulers = make(map[string]string)
	}
	if chart.AspectTimeline == nil {
		// An absent timeline simply yields no paths.
		chart.AspectTimeline = make([]horary.AspectEvent, 0)
	}
	chart.Normalized = true

	ev.addTraceStep("normalize", "chart normalized")
}
