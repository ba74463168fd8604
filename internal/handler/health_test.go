package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPingAlwaysSucceeds(t *testing.T) {
	h := NewHealthHandler(Check{Name: "fees-calc", Probe: func(context.Context) error {
		return errors.New("down")
	}})

	rec := httptest.NewRecorder()
	h.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestHealthAggregation(t *testing.T) {
	t.Run("all collaborators healthy", func(t *testing.T) {
		h := NewHealthHandler(
			Check{Name: "fees-calc", Probe: func(context.Context) error { return nil }},
			Check{Name: "pay-provider", Probe: func(context.Context) error { return nil }},
		)

		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "ok", body.Status)
		require.Equal(t, map[string]string{"fees-calc": "ok", "pay-provider": "ok"}, body.Checks)
	})

	t.Run("one collaborator down degrades the facade", func(t *testing.T) {
		h := NewHealthHandler(
			Check{Name: "fees-calc", Probe: func(context.Context) error { return nil }},
			Check{Name: "pay-provider", Probe: func(context.Context) error { return errors.New("connection refused") }},
		)

		rec := httptest.NewRecorder()
		h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "down", body.Status)
		require.Equal(t, "down", body.Checks["pay-provider"])
		require.Equal(t, "ok", body.Checks["fees-calc"])
	})
}
