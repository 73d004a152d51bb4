// Package recommend ranks catalog destinations for a traveller by blending
// destination fit with trip readiness.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/metrics"
	"github.com/neexbeast/tripsaver/internal/readiness"
	"github.com/neexbeast/tripsaver/internal/scoring"
)

const (
	// DestinationWeight and ReadinessWeight are the blend shares, in percent.
	DestinationWeight = 70
	ReadinessWeight   = 30

	DefaultTopN = 6
	MaxReasons  = 3

	BadgeTopPick   = "Top Pick"
	BadgeTripReady = "Trip Ready"
)

// ErrDestinationNotFound is returned when a requested id is not in the catalog.
var ErrDestinationNotFound = errors.New("destination not found")

// Request is one recommendation query. Trip is optional; a zero Now means
// the engine clock.
type Request struct {
	Preferences scoring.Preferences    `json:"preferences"`
	Trip        *readiness.TripContext `json:"trip,omitempty"`
	TopN        int                    `json:"topN,omitempty"`
	Now         time.Time              `json:"-"`
}

// Recommendation is one ranked destination.
type Recommendation struct {
	Destination        destination.Destination `json:"destination"`
	DestinationScore   int                     `json:"destinationScore"`
	DestinationMax     int                     `json:"destinationMaxScore"`
	DestinationPercent float64                 `json:"destinationPercent"`
	ReadinessScore     *int                    `json:"readinessScore,omitempty"`
	OverallScore       float64                 `json:"overallScore"`
	Tier               Tier                    `json:"tier"`
	Badges             []string                `json:"badges"`
	Reasons            []string                `json:"reasons"`
	Warnings           []string                `json:"warnings"`
	Breakdown          []scoring.Factor        `json:"breakdown"`
}

// Response carries the ranked list plus request-level context.
type Response struct {
	Recommendations []Recommendation  `json:"recommendations"`
	Readiness       *readiness.Result `json:"readiness,omitempty"`
	Warnings        []string          `json:"warnings"`
	CatalogSize     int               `json:"catalogSize"`
}

// Engine wires the catalog source to the two scoring components.
// It keeps no per-request state and may be called concurrently.
type Engine struct {
	source    destination.Source
	scorer    *scoring.Scorer
	evaluator *readiness.Evaluator
	clock     func() time.Time
	log       *slog.Logger
}

// NewEngine constructs an Engine using the wall clock.
func NewEngine(source destination.Source, scorer *scoring.Scorer, evaluator *readiness.Evaluator, log *slog.Logger) *Engine {
	return NewEngineWithClock(source, scorer, evaluator, time.Now, log)
}

// NewEngineWithClock constructs an Engine with an injectable clock (for tests).
func NewEngineWithClock(source destination.Source, scorer *scoring.Scorer, evaluator *readiness.Evaluator, clock func() time.Time, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{source: source, scorer: scorer, evaluator: evaluator, clock: clock, log: log}
}

// Catalog loads the current catalog from the source.
func (e *Engine) Catalog(ctx context.Context) (*destination.Catalog, error) {
	return destination.LoadCatalog(ctx, e.source, e.log)
}

// ScoreDestination scores a single catalog entry.
func (e *Engine) ScoreDestination(ctx context.Context, id string, prefs scoring.Preferences) (destination.Destination, scoring.Result, error) {
	cat, err := e.Catalog(ctx)
	if err != nil {
		return destination.Destination{}, scoring.Result{}, fmt.Errorf("scoring %s: %w", id, err)
	}
	d, ok := cat.Get(id)
	if !ok {
		return destination.Destination{}, scoring.Result{}, fmt.Errorf("scoring %s: %w", id, ErrDestinationNotFound)
	}
	return d, e.scorer.Score(d, prefs), nil
}

// EvaluateReadiness scores tc as of now, or the engine clock when now is zero.
func (e *Engine) EvaluateReadiness(tc readiness.TripContext, now time.Time) (*readiness.Result, error) {
	if now.IsZero() {
		now = e.clock()
	}
	return e.evaluator.Evaluate(tc, now)
}

// Recommend scores every catalog destination, blends in readiness when a
// trip is supplied, and returns the top entries. The catalog is read once;
// a source failure fails the whole call.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	defer func() { metrics.RecommendationDuration.Observe(time.Since(start).Seconds()) }()

	cat, err := e.Catalog(ctx)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("recommend: %w", err)
	}

	resp := &Response{Warnings: []string{}, CatalogSize: cat.Len()}

	if req.Trip != nil {
		ready, err := e.EvaluateReadiness(*req.Trip, req.Now)
		if err != nil {
			e.log.Warn("readiness skipped", "err", err)
			resp.Warnings = append(resp.Warnings, "Trip readiness skipped: "+err.Error())
		} else {
			resp.Readiness = ready
		}
	}

	recs := make([]Recommendation, 0, cat.Len())
	for _, d := range cat.All() {
		recs = append(recs, blend(d, req.Preferences.Month, e.scorer.Score(d, req.Preferences), resp.Readiness, resp.Warnings))
	}

	Rank(recs)

	topN := req.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(recs) > topN {
		recs = recs[:topN]
	}
	if len(recs) > 0 {
		recs[0].Badges = appendUnique(recs[0].Badges, BadgeTopPick)
	}

	resp.Recommendations = recs
	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	return resp, nil
}

// Rank sorts recs by overall score descending, then id ascending.
func Rank(recs []Recommendation) {
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		switch {
		case a.OverallScore > b.OverallScore:
			return -1
		case a.OverallScore < b.OverallScore:
			return 1
		}
		return strings.Compare(a.Destination.ID, b.Destination.ID)
	})
}

// blend turns one destination score into a Recommendation. Crowd warnings
// for the travel month follow the scorer's own warnings.
func blend(d destination.Destination, month int, res scoring.Result, ready *readiness.Result, shared []string) Recommendation {
	rec := Recommendation{
		Destination:        d,
		DestinationScore:   res.Score,
		DestinationMax:     res.MaxScore,
		DestinationPercent: res.Percent,
		OverallScore:       res.Percent,
		Breakdown:          res.Breakdown,
		Warnings:           []string{},
	}

	var badges []string
	for _, b := range res.Badges {
		badges = appendUnique(badges, b)
	}

	if ready != nil {
		rs := ready.OverallScore
		rec.ReadinessScore = &rs
		rec.OverallScore = BlendScore(res.Score, res.MaxScore, ready.OverallScore)
		if ready.OverallStatus == readiness.Ready {
			badges = appendUnique(badges, BadgeTripReady)
		}
		if ready.OverallStatus == readiness.NotReady {
			rec.Warnings = append(rec.Warnings, "Trip readiness is low; review the action items before booking")
		}
	}

	rec.Tier = Classify(rec.OverallScore)
	if badges == nil {
		badges = []string{}
	}
	rec.Badges = badges
	rec.Reasons = slices.Clone(res.Reasons[:min(len(res.Reasons), MaxReasons)])
	rec.Warnings = append(rec.Warnings, res.Warnings...)
	rec.Warnings = append(rec.Warnings, CrowdWarnings(month, d.State)...)
	rec.Warnings = append(rec.Warnings, shared...)

	return rec
}

// BlendScore weights a destination score of points out of maxPoints against a
// readiness percentage. The sum is formed in integers and divided once, so a
// blend that lands exactly on a tier boundary is not rounded below it.
func BlendScore(points, maxPoints, readinessPct int) float64 {
	if maxPoints <= 0 {
		return float64(ReadinessWeight*readinessPct) / 100
	}
	num := DestinationWeight*100*points + ReadinessWeight*readinessPct*maxPoints
	return float64(num) / float64(100*maxPoints)
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
