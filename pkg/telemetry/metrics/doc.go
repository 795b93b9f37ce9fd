// Package metrics provides Prometheus metrics for chart evaluation:
// verdict counts, selected paths, fired blockers, the confidence
// distribution, and evaluation latency. Metrics are registered on a caller
// supplied registry and exposed through the standard promhttp handler.
package metrics
