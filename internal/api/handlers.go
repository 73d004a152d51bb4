package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/readiness"
	"github.com/neexbeast/tripsaver/internal/recommend"
)

const maxBodyBytes = 1 << 20

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	engine      Recommender
	invalidator CatalogInvalidator
	log         *slog.Logger
}

// NewHandlers constructs Handlers. invalidator may be nil when no cache is configured.
func NewHandlers(engine Recommender, invalidator CatalogInvalidator, log *slog.Logger) *Handlers {
	return &Handlers{
		engine:      engine,
		invalidator: invalidator,
		log:         log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeProblems(w http.ResponseWriter, status int, msg string, problems []string) {
	writeJSON(w, status, map[string]any{"error": msg, "problems": problems})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// catalogError maps a catalog load failure onto 503 or 500.
func (h *Handlers) catalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, destination.ErrCatalogUnavailable) {
		h.log.Error("catalog unavailable", "err", err)
		writeError(w, http.StatusServiceUnavailable, "destination catalog unavailable")
		return
	}
	h.log.Error("catalog load failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// ListDestinations handles GET /api/v1/destinations, optionally filtered by ?state=.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	cat, err := h.engine.Catalog(r.Context())
	if err != nil {
		h.catalogError(w, err)
		return
	}

	records := cat.All()
	if state := r.URL.Query().Get("state"); state != "" {
		records = records[:0]
		for _, id := range cat.ByState(state) {
			d, _ := cat.Get(id)
			records = append(records, d)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":        len(records),
		"destinations": records,
	})
}

// ListStates handles GET /api/v1/states.
func (h *Handlers) ListStates(w http.ResponseWriter, r *http.Request) {
	cat, err := h.engine.Catalog(r.Context())
	if err != nil {
		h.catalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"states": cat.States()})
}

// GetDestination handles GET /api/v1/destinations/{id}.
func (h *Handlers) GetDestination(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cat, err := h.engine.Catalog(r.Context())
	if err != nil {
		h.catalogError(w, err)
		return
	}

	d, ok := cat.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ScoreDestination handles GET /api/v1/destinations/{id}/score?month=&budget=&categories=.
func (h *Handlers) ScoreDestination(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := parsePreferences(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if problems := validateRequest(body); len(problems) > 0 {
		writeProblems(w, http.StatusBadRequest, "invalid preferences", problems)
		return
	}

	d, res, err := h.engine.ScoreDestination(r.Context(), id, body.toPreferences())
	if err != nil {
		if errors.Is(err, recommend.ErrDestinationNotFound) {
			writeError(w, http.StatusNotFound, "destination not found")
			return
		}
		h.catalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"destination": d,
		"score":       res,
		"tier":        recommend.Classify(res.Percent),
	})
}

// Recommend handles POST /api/v1/recommendations.
// An invalid trip does not fail the request; the response carries a warning instead.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var body recommendationBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if problems := validateRequest(body); len(problems) > 0 {
		writeProblems(w, http.StatusBadRequest, "invalid recommendation request", problems)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Preferences: body.Preferences.toPreferences(),
		Trip:        body.Trip,
		TopN:        body.TopN,
	})
	if err != nil {
		h.catalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// EvaluateReadiness handles POST /api/v1/readiness.
func (h *Handlers) EvaluateReadiness(w http.ResponseWriter, r *http.Request) {
	var tc readiness.TripContext
	if err := decodeJSON(w, r, &tc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.engine.EvaluateReadiness(tc, time.Time{})
	if err != nil {
		var invalid *readiness.InvalidInputError
		if errors.As(err, &invalid) {
			writeProblems(w, http.StatusUnprocessableEntity, "invalid trip context", invalid.Problems)
			return
		}
		h.log.Error("readiness evaluation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// RefreshCatalog handles POST /api/v1/catalog/refresh.
// Drops the cached snapshot, then reloads so the next reader hits a warm cache.
func (h *Handlers) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	cached := h.invalidator != nil
	if cached {
		if err := h.invalidator.Invalidate(r.Context()); err != nil {
			h.log.Error("catalog cache invalidate failed", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to invalidate catalog cache")
			return
		}
	}

	cat, err := h.engine.Catalog(r.Context())
	if err != nil {
		h.catalogError(w, err)
		return
	}

	h.log.Info("catalog refreshed", "count", cat.Len(), "cached", cached)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "refreshed",
		"count":  cat.Len(),
		"cached": cached,
	})
}
