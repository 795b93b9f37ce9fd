package engine

import (
	"fmt"

	"stellium-hq/horarium/pkg/horary"
)

// WeightTranslation is the confidence bonus carried by a selected
// translation-of-light path. Direct and collection paths carry no bonus in
// this weighting.
const WeightTranslation = 0.1

// pathBonuses maps path types to their confidence bonus.
var pathBonuses = map[horary.AspectType]float64{
	horary.AspectTranslation: WeightTranslation,
}

// findPath scans the aspect timeline in order for a qualifying path.
//
// Recognized-type events are partitioned into the chart's Paths (status
// applying) and RejectedPaths (any other status), each in original timeline
// order; events with unrecognized types are ignored entirely. The first
// qualifying event wins; ties between recognized types break by timeline
// order, not by a fixed type priority. On success the selected type's proof
// token is appended and the baseline flag and bonus are set on the
// accumulator. This phase never fails: an empty timeline yields no paths.
func (e *Evaluator) findPath(ev *evaluation) {
	chart := ev.chart

	chart.Paths = make([]horary.AspectType, 0)
	chart.RejectedPaths = make([]horary.AspectType, 0)

	var selected horary.AspectType

	for _, event := range chart.AspectTimeline {
		if !event.Type.Recognized() {
			continue
		}

		if event.Status == horary.StatusApplying {
			chart.Paths = append(chart.Paths, event.Type)
			if !ev.baseline {
				selected = event.Type
				ev.baseline = true
				ev.bonus = pathBonuses[event.Type]
			}
		} else {
			chart.RejectedPaths = append(chart.RejectedPaths, event.Type)
		}
	}

	if ev.baseline {
		ev.appendProof(fmt.Sprintf("path:%s", selected))
		ev.addTraceStep("path_finder", fmt.Sprintf("selected path %q (bonus %.2f)", selected, ev.bonus))
		return
	}

	ev.addTraceStep("path_finder", "no qualifying path")
}
