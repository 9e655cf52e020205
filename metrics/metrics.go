// metrics/metrics.go

// Package metrics holds the Prometheus collectors for page renders.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groupboard_page_renders_total",
			Help: "Pages rendered, by route and outcome",
		}, []string{"route", "outcome"})

	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "groupboard_page_render_duration_seconds",
			Help:    "Time spent loading, filtering and rendering a page",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"})

	GroupsMatched = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "groupboard_groups_matched",
			Help:    "Groups listed on a rendered page",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		})
)

// ObserveRender records one render of route that started at start.
func ObserveRender(route string, start time.Time, matched int, err error) {
	RenderDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if err != nil {
		RendersTotal.WithLabelValues(route, OutcomeError).Inc()
		return
	}
	RendersTotal.WithLabelValues(route, OutcomeOK).Inc()
	GroupsMatched.Observe(float64(matched))
}
