package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Comparison outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	ComparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overcast_comparisons_total",
		Help: "Total number of cast comparisons by outcome",
	}, []string{"outcome"})

	CommonCastSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "overcast_common_cast_size",
		Help:    "Number of performers found in both titles of a successful comparison",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	CatalogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overcast_catalog_requests_total",
		Help: "Total number of requests sent to the metadata catalog",
	}, []string{"endpoint", "status"})

	CatalogRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "overcast_catalog_request_duration_seconds",
		Help:    "Duration of metadata catalog requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overcast_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "path", "status"})
)
