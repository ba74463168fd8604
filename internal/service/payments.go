package service

import (
	"context"
	"fmt"

	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/dto"
	"github.com/epr-fees/payment-facade/internal/logging"
)

type paymentsClient interface {
	Initiate(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	Get(ctx context.Context, paymentID string) (*dto.PaymentResponse, error)
}

// PaymentsService orchestrates payment initiation and retrieval against
// the payment provider, translating provider state into the facade's
// payment status.
type PaymentsService struct {
	client paymentsClient
}

func NewPaymentsService(c paymentsClient) *PaymentsService {
	return &PaymentsService{client: c}
}

func (s *PaymentsService) Initiate(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResult, error) {
	if req == nil {
		return nil, fmt.Errorf("initiate payment: %w", domain.ErrNilRequest)
	}
	resp, err := s.client.Initiate(ctx, req)
	if err != nil {
		return nil, mapClientError(ctx, "initiate payment", err)
	}
	return s.toResult(ctx, "initiate payment", resp)
}

func (s *PaymentsService) Get(ctx context.Context, paymentID string) (*dto.PaymentResult, error) {
	resp, err := s.client.Get(ctx, paymentID)
	if err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("get payment %s: %w", paymentID, domain.ErrNotFound)
		}
		return nil, mapClientError(ctx, "get payment", err)
	}
	return s.toResult(ctx, "get payment", resp)
}

func (s *PaymentsService) toResult(ctx context.Context, op string, resp *dto.PaymentResponse) (*dto.PaymentResult, error) {
	status, err := domain.MapPaymentStatus(resp.State.Status, resp.State.Code)
	if err != nil {
		// An unrecognised state combination is fatal to this request.
		logging.FromContext(ctx).Error("unmappable provider payment state",
			"op", op,
			"payment_id", resp.PaymentID,
			"provider_status", resp.State.Status,
			"provider_code", resp.State.Code,
			"error", err,
		)
		return nil, fmt.Errorf("%s: %w", op, domain.ErrService)
	}

	result := &dto.PaymentResult{
		PaymentID:   resp.PaymentID,
		Amount:      resp.Amount,
		Reference:   resp.Reference,
		Description: resp.Description,
		Status:      status,
		Links:       resp.Links,
	}
	if resp.Links.NextURL != nil {
		result.NextURL = resp.Links.NextURL.Href
	}
	return result, nil
}
