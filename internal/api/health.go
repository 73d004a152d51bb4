package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

// HealthHandlerFunc returns an http.HandlerFunc that pings db and redis
// concurrently. A nil pinger is reported as "not configured" and does not
// affect the status code; any failed ping yields 503.
func HealthHandlerFunc(db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		checks := []struct {
			name   string
			pinger Pinger
		}{
			{"db", db},
			{"redis", redis},
		}
		results := make([]string, len(checks))

		var g errgroup.Group
		for i, c := range checks {
			if c.pinger == nil {
				results[i] = "not configured"
				continue
			}
			g.Go(func() error {
				if err := c.pinger.Ping(ctx); err != nil {
					log.Error("health check: ping failed", "dependency", c.name, "err", err)
					results[i] = "error"
					return err
				}
				results[i] = "ok"
				return nil
			})
		}

		status, overall := http.StatusOK, "ok"
		if err := g.Wait(); err != nil {
			status, overall = http.StatusServiceUnavailable, "degraded"
		}

		body := map[string]string{"status": overall}
		for i, c := range checks {
			body[c.name] = results[i]
		}
		writeJSON(w, status, body)
	}
}
