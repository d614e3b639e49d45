// Package metrics registers the prometheus collectors for upstream calls
// and document rendering.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "proposal_upstream_request_duration_seconds",
		Help:    "Duration of calls to external collaborators.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service"})

	upstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "proposal_upstream_errors_total",
		Help: "Failed calls to external collaborators.",
	}, []string{"service"})

	proposalsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proposal_documents_generated_total",
		Help: "Proposal documents assembled.",
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "proposal_render_duration_seconds",
		Help:    "Duration of markdown-to-PDF conversions.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
	})
)

// ObserveUpstream records the outcome of one external call.
func ObserveUpstream(service string, d time.Duration, err error) {
	upstreamDuration.WithLabelValues(service).Observe(d.Seconds())
	if err != nil {
		upstreamErrors.WithLabelValues(service).Inc()
	}
}

// CountProposal records one assembled proposal document.
func CountProposal() {
	proposalsGenerated.Inc()
}

// ObserveRender records the duration of one PDF conversion.
func ObserveRender(d time.Duration) {
	renderDuration.Observe(d.Seconds())
}
