package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/epr-fees/payment-facade/internal/dto"
	"github.com/epr-fees/payment-facade/internal/logging"
	"github.com/epr-fees/payment-facade/internal/validation"
)

type paymentsService interface {
	Initiate(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResult, error)
	Get(ctx context.Context, paymentID string) (*dto.PaymentResult, error)
}

type PaymentHandler struct {
	validator *validation.Validator
	payments  paymentsService
}

func NewPaymentHandler(validator *validation.Validator, payments paymentsService) *PaymentHandler {
	return &PaymentHandler{validator: validator, payments: payments}
}

func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req dto.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := h.validator.Payment(&req); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	result, err := h.payments.Initiate(r.Context(), &req)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	log.Info("payment initiated", "payment_id", result.PaymentID, "reference", result.Reference)
	w.Header().Set("Location", fmt.Sprintf("/api/v1/payments/%s", result.PaymentID))
	RespondSuccess(w, http.StatusCreated, result)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	paymentID := r.PathValue("id")
	if paymentID == "" {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	result, err := h.payments.Get(r.Context(), paymentID)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, result)
}
