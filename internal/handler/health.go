package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/epr-fees/payment-facade/internal/logging"
)

// Check probes one downstream collaborator.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type HealthHandler struct {
	checks []Check
}

func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Ping is the liveness probe: an empty 200 regardless of collaborator
// health.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Health aggregates collaborator probes, run concurrently. Any failed
// probe marks the facade degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]string, len(h.checks))

	// A plain group: one collaborator being down must not cancel the
	// probes of the others.
	var g errgroup.Group
	for _, check := range h.checks {
		g.Go(func() error {
			err := check.Probe(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[check.Name] = "down"
				return err
			}
			results[check.Name] = "ok"
			return nil
		})
	}

	overallStatus := "ok"
	httpStatus := http.StatusOK
	if err := g.Wait(); err != nil {
		logging.FromContext(r.Context()).Warn("health check failed", "error", err)
		overallStatus = "down"
		httpStatus = http.StatusServiceUnavailable
	}

	RespondJSON(w, httpStatus, map[string]any{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    results,
	})
}
