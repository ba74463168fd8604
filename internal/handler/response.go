package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/validation"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

func RespondValidationError(w http.ResponseWriter, fields []validation.FieldError) {
	RespondAppError(w, ErrValidationFailed, fields)
}

// RespondDomainError translates an orchestration failure into the
// outbound taxonomy. Service errors were already logged where they were
// caught, so they surface here as an opaque 500 without re-logging.
func RespondDomainError(w http.ResponseWriter, err error) {
	var vErr *domain.DownstreamValidationError
	if errors.As(err, &vErr) {
		RespondAppError(w, ErrValidationFailed, vErr.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		RespondAppError(w, ErrResourceNotFound, nil)
	case errors.Is(err, domain.ErrService), errors.Is(err, domain.ErrNilRequest):
		RespondAppError(w, ErrInternalError, nil)
	default:
		slog.Error("unhandled domain error", "error", err)
		RespondAppError(w, ErrInternalError, nil)
	}
}
