// Package metrics holds the Prometheus collectors for the recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts recommend calls by outcome ("ok", "error").
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripsaver_recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"result"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripsaver_recommendation_duration_seconds",
			Help:    "Time spent scoring and ranking the catalog",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ReadinessEvaluations counts readiness evaluations by outcome ("ok", "invalid").
	ReadinessEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripsaver_readiness_evaluations_total",
			Help: "Total number of trip readiness evaluations",
		},
		[]string{"result"},
	)

	CatalogFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripsaver_catalog_fallback_total",
			Help: "Times the static catalog was served instead of the live one",
		},
	)

	// CatalogBreakerState is 0 closed, 1 half-open, 2 open.
	CatalogBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tripsaver_catalog_breaker_state",
			Help: "Circuit breaker state for the live catalog source",
		},
		[]string{"name"},
	)

	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripsaver_catalog_cache_hits_total",
			Help: "Catalog reads served from Redis",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tripsaver_catalog_cache_misses_total",
			Help: "Catalog reads that fell through to the backing source",
		},
	)
)

// HTTPRequests counts served requests by method, chi route pattern and status code.
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tripsaver_http_requests_total",
		Help: "HTTP requests by route and status",
	},
	[]string{"method", "route", "status"},
)
