package api_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tripsaver/internal/api"
	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/readiness"
	"github.com/neexbeast/tripsaver/internal/recommend"
	"github.com/neexbeast/tripsaver/internal/scoring"
)

// ---- mock implementations ----

type mockRecommender struct {
	catalogFn   func(ctx context.Context) (*destination.Catalog, error)
	scoreFn     func(ctx context.Context, id string, prefs scoring.Preferences) (destination.Destination, scoring.Result, error)
	readinessFn func(tc readiness.TripContext, now time.Time) (*readiness.Result, error)
	recommendFn func(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

func (m *mockRecommender) Catalog(ctx context.Context) (*destination.Catalog, error) {
	return m.catalogFn(ctx)
}
func (m *mockRecommender) ScoreDestination(ctx context.Context, id string, prefs scoring.Preferences) (destination.Destination, scoring.Result, error) {
	return m.scoreFn(ctx, id, prefs)
}
func (m *mockRecommender) EvaluateReadiness(tc readiness.TripContext, now time.Time) (*readiness.Result, error) {
	return m.readinessFn(tc, now)
}
func (m *mockRecommender) Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error) {
	return m.recommendFn(ctx, req)
}

type mockInvalidator struct {
	calls int
	err   error
}

func (m *mockInvalidator) Invalidate(_ context.Context) error {
	m.calls++
	return m.err
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// ---- helpers ----

const testToken = "secret-token"

var fixedNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEngine builds a real engine over the built-in catalog with a fixed clock.
func newEngine() *recommend.Engine {
	log := quietLog()
	return recommend.NewEngineWithClock(destination.NewStaticSource(), scoring.NewScorer(log),
		readiness.NewEvaluator(log), func() time.Time { return fixedNow }, log)
}

func unavailable() *mockRecommender {
	err := fmt.Errorf("postgres catalog: %w", destination.ErrCatalogUnavailable)
	return &mockRecommender{
		catalogFn: func(context.Context) (*destination.Catalog, error) { return nil, err },
		scoreFn: func(context.Context, string, scoring.Preferences) (destination.Destination, scoring.Result, error) {
			return destination.Destination{}, scoring.Result{}, err
		},
		recommendFn: func(context.Context, recommend.Request) (*recommend.Response, error) { return nil, err },
	}
}

type routerOpts struct {
	invalidator api.CatalogInvalidator
	db, redis   api.Pinger
	ratePerMin  int
}

func buildRouter(engine api.Recommender, opts routerOpts) http.Handler {
	if opts.ratePerMin == 0 {
		opts.ratePerMin = 1000
	}
	log := quietLog()
	handlers := api.NewHandlers(engine, opts.invalidator, log)
	return api.NewRouter(handlers, testToken, opts.ratePerMin, opts.db, opts.redis, log)
}

func do(t *testing.T, h http.Handler, method, target string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, r)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

// ---- GET /api/v1/destinations ----

func TestListDestinations_All(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/destinations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count        int                       `json:"count"`
		Destinations []destination.Destination `json:"destinations"`
	}
	decode(t, w, &body)
	assert.Equal(t, len(destination.StaticRecords()), body.Count)
	assert.Len(t, body.Destinations, body.Count)
}

func TestListDestinations_ByState(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/destinations?state=maharashtra", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count        int                       `json:"count"`
		Destinations []destination.Destination `json:"destinations"`
	}
	decode(t, w, &body)
	require.NotZero(t, body.Count)
	for _, d := range body.Destinations {
		assert.Equal(t, "Maharashtra", d.State)
	}
}

func TestListDestinations_CatalogUnavailable(t *testing.T) {
	w := do(t, buildRouter(unavailable(), routerOpts{}), http.MethodGet, "/api/v1/destinations", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestListStates(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/states", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string][]string
	decode(t, w, &body)
	assert.Contains(t, body["states"], "Goa")
	assert.IsIncreasing(t, body["states"])
}

// ---- GET /api/v1/destinations/{id} ----

func TestGetDestination_Found(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/destinations/goa", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var d destination.Destination
	decode(t, w, &d)
	assert.Equal(t, "goa", d.ID)
	assert.Equal(t, "goa-in", d.BookingSlug)
}

func TestGetDestination_NotFound(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/destinations/atlantis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ---- GET /api/v1/destinations/{id}/score ----

func TestScoreDestination_OK(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet,
		"/api/v1/destinations/goa/score?month=12&budget=moderate&categories=beach,%20Party", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Destination destination.Destination `json:"destination"`
		Score       scoring.Result          `json:"score"`
		Tier        recommend.Tier          `json:"tier"`
	}
	decode(t, w, &body)
	assert.Equal(t, "goa", body.Destination.ID)
	assert.Equal(t, 90, body.Score.Score)
	assert.Equal(t, recommend.HighlyRecommended, body.Tier)
	assert.Len(t, body.Score.Breakdown, 4)
}

func TestScoreDestination_PassesPreferences(t *testing.T) {
	var got scoring.Preferences
	engine := &mockRecommender{
		scoreFn: func(_ context.Context, id string, prefs scoring.Preferences) (destination.Destination, scoring.Result, error) {
			got = prefs
			return destination.Destination{ID: id}, scoring.Result{}, nil
		},
	}

	w := do(t, buildRouter(engine, routerOpts{}), http.MethodGet,
		"/api/v1/destinations/goa/score?month=7&budget=Premium&categories=Beach,,Culture", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, scoring.Preferences{
		Month:      7,
		Budget:     destination.BudgetPremium,
		Categories: []destination.Category{destination.CategoryBeach, destination.CategoryCulture},
	}, got)
}

func TestScoreDestination_BadQuery(t *testing.T) {
	router := buildRouter(newEngine(), routerOpts{})
	tests := []struct {
		name, query string
	}{
		{"non-numeric month", "month=december"},
		{"month out of range", "month=13"},
		{"unknown budget", "month=5&budget=luxury"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/v1/destinations/goa/score?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestScoreDestination_NotFound(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/destinations/atlantis/score?month=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScoreDestination_CatalogUnavailable(t *testing.T) {
	w := do(t, buildRouter(unavailable(), routerOpts{}), http.MethodGet, "/api/v1/destinations/goa/score?month=1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ---- POST /api/v1/recommendations ----

func TestRecommend_DestinationOnly(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/recommendations", map[string]any{
		"preferences": map[string]any{"month": 12, "budget": "moderate", "categories": []string{"Beach"}},
		"topN":        3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp recommend.Response
	decode(t, w, &resp)
	require.Len(t, resp.Recommendations, 3)
	assert.Nil(t, resp.Readiness)
	assert.Contains(t, resp.Recommendations[0].Badges, recommend.BadgeTopPick)
	assert.Equal(t, len(destination.StaticRecords()), resp.CatalogSize)
}

func TestRecommend_WithTrip(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/recommendations", map[string]any{
		"preferences": map[string]any{"month": 12},
		"trip": map[string]any{
			"budget":      map[string]any{"available": 15000, "estimated": 10000},
			"timing":      map[string]any{"departureDate": fixedNow.AddDate(0, 0, 90), "flexibility": "very-flexible"},
			"destination": map[string]any{"type": "domestic", "seasonality": "off-peak"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp recommend.Response
	decode(t, w, &resp)
	require.NotNil(t, resp.Readiness)
	assert.Equal(t, 100, resp.Readiness.OverallScore)
	assert.Len(t, resp.Recommendations, recommend.DefaultTopN)
	for _, r := range resp.Recommendations {
		require.NotNil(t, r.ReadinessScore)
		assert.Contains(t, r.Badges, recommend.BadgeTripReady)
	}
}

func TestRecommend_InvalidTripStillRecommends(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/recommendations", map[string]any{
		"preferences": map[string]any{"month": 3},
		"trip":        map[string]any{"budget": map[string]any{"available": 100}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp recommend.Response
	decode(t, w, &resp)
	assert.Nil(t, resp.Readiness)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "timing is required")
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommend_BadRequest(t *testing.T) {
	router := buildRouter(newEngine(), routerOpts{})
	tests := []struct {
		name string
		body any
	}{
		{"malformed json", `{"preferences": `},
		{"fractional month", map[string]any{"preferences": map[string]any{"month": 0.5}}},
		{"month out of range", map[string]any{"preferences": map[string]any{"month": 13}}},
		{"topN too large", map[string]any{"preferences": map[string]any{"month": 1}, "topN": 46}},
		{"negative topN", map[string]any{"preferences": map[string]any{"month": 1}, "topN": -1}},
		{"unknown budget", map[string]any{"preferences": map[string]any{"budget": "luxury"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/recommendations", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecommend_CatalogUnavailable(t *testing.T) {
	w := do(t, buildRouter(unavailable(), routerOpts{}), http.MethodPost, "/api/v1/recommendations",
		map[string]any{"preferences": map[string]any{"month": 1}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ---- POST /api/v1/readiness ----

func TestEvaluateReadiness_OK(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/readiness", map[string]any{
		"budget":      map[string]any{"available": 5000, "estimated": 10000},
		"timing":      map[string]any{"departureDate": fixedNow.AddDate(0, 0, 10)},
		"destination": map[string]any{"type": "domestic"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res readiness.Result
	decode(t, w, &res)
	assert.Equal(t, 60, res.OverallScore)
	assert.Equal(t, readiness.NeedsPreparation, res.OverallStatus)
	assert.Equal(t, 10, res.DaysUntilDeparture)
	assert.Len(t, res.Scores, 4)
}

func TestEvaluateReadiness_Invalid(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/readiness", map[string]any{
		"destination": map[string]any{"type": "orbital"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error    string   `json:"error"`
		Problems []string `json:"problems"`
	}
	decode(t, w, &body)
	assert.Equal(t, "invalid trip context", body.Error)
	assert.Contains(t, body.Problems, "budget is required")
	assert.Contains(t, body.Problems, "timing is required")
}

func TestEvaluateReadiness_MalformedJSON(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/readiness", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateReadiness_InternalError(t *testing.T) {
	engine := &mockRecommender{
		readinessFn: func(readiness.TripContext, time.Time) (*readiness.Result, error) {
			return nil, fmt.Errorf("boom")
		},
	}
	w := do(t, buildRouter(engine, routerOpts{}), http.MethodPost, "/api/v1/readiness", map[string]any{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ---- POST /api/v1/catalog/refresh ----

func TestRefreshCatalog_InvalidatesCache(t *testing.T) {
	inv := &mockInvalidator{}
	w := do(t, buildRouter(newEngine(), routerOpts{invalidator: inv}), http.MethodPost, "/api/v1/catalog/refresh", nil,
		"Authorization", "Bearer "+testToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, inv.calls)

	var body map[string]any
	decode(t, w, &body)
	assert.Equal(t, "refreshed", body["status"])
	assert.Equal(t, true, body["cached"])
	assert.EqualValues(t, len(destination.StaticRecords()), body["count"])
}

func TestRefreshCatalog_NoCache(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodPost, "/api/v1/catalog/refresh", nil,
		"Authorization", "Bearer "+testToken)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	decode(t, w, &body)
	assert.Equal(t, false, body["cached"])
}

func TestRefreshCatalog_InvalidateError(t *testing.T) {
	inv := &mockInvalidator{err: fmt.Errorf("redis down")}
	w := do(t, buildRouter(newEngine(), routerOpts{invalidator: inv}), http.MethodPost, "/api/v1/catalog/refresh", nil,
		"Authorization", "Bearer "+testToken)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRefreshCatalog_SourceDown(t *testing.T) {
	w := do(t, buildRouter(unavailable(), routerOpts{invalidator: &mockInvalidator{}}), http.MethodPost,
		"/api/v1/catalog/refresh", nil, "Authorization", "Bearer "+testToken)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ---- GET /api/v1/health ----

func TestHealth_OK(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{db: &mockPinger{}, redis: &mockPinger{}}),
		http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
	assert.Equal(t, "ok", body["redis"])
}

func TestHealth_NotConfigured(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{}), http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "not configured", body["db"])
	assert.Equal(t, "not configured", body["redis"])
}

func TestHealth_DBDown(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{
		db:    &mockPinger{err: fmt.Errorf("db unreachable")},
		redis: &mockPinger{},
	}), http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "error", body["db"])
	assert.Equal(t, "ok", body["redis"])
}

func TestHealth_RedisDown(t *testing.T) {
	w := do(t, buildRouter(newEngine(), routerOpts{redis: &mockPinger{err: fmt.Errorf("redis unreachable")}}),
		http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ---- Auth middleware ----

func TestBearerAuth(t *testing.T) {
	router := buildRouter(newEngine(), routerOpts{})
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong token", "Bearer wrong-token"},
		{"missing bearer prefix", testToken},
		{"lowercase scheme", "bearer " + testToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/catalog/refresh", nil, "Authorization", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestBearerAuth_PublicRoutesOpen(t *testing.T) {
	router := buildRouter(newEngine(), routerOpts{})
	for _, target := range []string{"/api/v1/health", "/api/v1/destinations", "/api/v1/states"} {
		w := do(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

// ---- rate limiting and metrics ----

func TestRateLimit(t *testing.T) {
	router := buildRouter(newEngine(), routerOpts{ratePerMin: 2})
	for i := 0; i < 2; i++ {
		w := do(t, router, http.MethodGet, "/api/v1/states", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(t, router, http.MethodGet, "/api/v1/states", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := buildRouter(newEngine(), routerOpts{})
	do(t, router, http.MethodPost, "/api/v1/recommendations", map[string]any{"preferences": map[string]any{"month": 1}})

	w := do(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := w.Body.String()
	assert.Contains(t, out, "tripsaver_recommendations_total")
	assert.Contains(t, out, `tripsaver_http_requests_total{method="POST",route="/api/v1/recommendations",status="200"}`)
}
