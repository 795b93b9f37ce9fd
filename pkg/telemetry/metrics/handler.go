package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
//
// The handler exposes every metric registered with the underlying registry
// in the standard Prometheus exposition format. Mount it at "/metrics":
//
//	em := metrics.NewEvaluationMetrics(nil, nil)
//	http.Handle("/metrics", em.Handler())
//	http.ListenAndServe(":8080", nil)
func (em *EvaluationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(
		em.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	)
}
