package api

import (
	"context"
	"time"

	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/readiness"
	"github.com/neexbeast/tripsaver/internal/recommend"
	"github.com/neexbeast/tripsaver/internal/scoring"
)

// Recommender defines the scoring operations needed by handlers.
// *recommend.Engine satisfies it.
type Recommender interface {
	Catalog(ctx context.Context) (*destination.Catalog, error)
	ScoreDestination(ctx context.Context, id string, prefs scoring.Preferences) (destination.Destination, scoring.Result, error)
	EvaluateReadiness(tc readiness.TripContext, now time.Time) (*readiness.Result, error)
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// CatalogInvalidator drops cached catalog snapshots.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Pinger is a dependency checked by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
