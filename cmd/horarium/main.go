// Horarium is a deterministic rule-based evaluator for horary astrology charts.
//
// It evaluates cast charts against a fixed rule pipeline, producing:
//   - A YES/NO verdict for the queried outcome
//   - A clamped confidence score
//   - An ordered proof trail naming every rule that fired
//   - Optional verdict evidence records for later audit
//
// Usage:
//
//	# Evaluate a chart file or directory of charts
//	horarium evaluate --charts ./charts
//
//	# Evaluate with combustion treated as non-fatal
//	horarium evaluate --charts chart.yaml --fatal-combustion=false
//
//	# Watch a chart directory and evaluate charts as they change
//	horarium watch --config /path/to/config.yaml
//
//	# Query recorded verdicts
//	horarium history --verdict NO --limit 20
//
//	# Show version information
//	horarium version
//
// For complete documentation, see: https://github.com/stellium-hq/horarium
package main

func main() {
	Execute()
}
