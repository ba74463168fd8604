package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/dto"
)

type fakePaymentsClient struct {
	initiateResp *dto.PaymentResponse
	getResp      *dto.PaymentResponse
	err          error
}

func (f *fakePaymentsClient) Initiate(context.Context, *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	return f.initiateResp, f.err
}

func (f *fakePaymentsClient) Get(context.Context, string) (*dto.PaymentResponse, error) {
	return f.getResp, f.err
}

func TestInitiatePayment(t *testing.T) {
	t.Run("maps created state and flattens next url", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentsClient{
			initiateResp: &dto.PaymentResponse{
				PaymentID: "pay_123",
				Amount:    2500,
				Reference: "PAY-1",
				State:     dto.PaymentState{Status: "created"},
				Links: dto.PaymentLinks{
					NextURL: &dto.Link{Href: "https://provider.example/next/pay_123", Method: http.MethodGet},
				},
			},
		})

		result, err := svc.Initiate(context.Background(), &dto.PaymentRequest{Amount: 2500, Reference: "PAY-1"})
		require.NoError(t, err)
		require.Equal(t, domain.PaymentStatusInitiated, result.Status)
		require.Equal(t, "https://provider.example/next/pay_123", result.NextURL)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentsClient{})
		_, err := svc.Initiate(context.Background(), nil)
		require.ErrorIs(t, err, domain.ErrNilRequest)
	})

	t.Run("unmappable state is a service error", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentsClient{
			initiateResp: &dto.PaymentResponse{
				PaymentID: "pay_123",
				State:     dto.PaymentState{Status: "success", Code: "P0010"},
			},
		})

		_, err := svc.Initiate(context.Background(), &dto.PaymentRequest{Amount: 1})
		require.ErrorIs(t, err, domain.ErrService)
	})

	t.Run("provider 400 propagates as validation error", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentsClient{err: apiErr(http.StatusBadRequest, `"return_url is invalid"`)})

		_, err := svc.Initiate(context.Background(), &dto.PaymentRequest{Amount: 1})
		var vErr *domain.DownstreamValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "return_url is invalid", vErr.Message)
	})
}

func TestGetPayment(t *testing.T) {
	tests := []struct {
		name  string
		state dto.PaymentState
		want  domain.PaymentStatus
	}{
		{name: "success", state: dto.PaymentState{Status: "success", Finished: true}, want: domain.PaymentStatusSuccess},
		{name: "user cancelled", state: dto.PaymentState{Status: "failed", Code: "P0030", Finished: true}, want: domain.PaymentStatusUserCancelled},
		{name: "declined", state: dto.PaymentState{Status: "failed", Code: "P0010", Finished: true}, want: domain.PaymentStatusFailed},
		{name: "in progress", state: dto.PaymentState{Status: "started"}, want: domain.PaymentStatusInProgress},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewPaymentsService(&fakePaymentsClient{
				getResp: &dto.PaymentResponse{PaymentID: "pay_9", State: tc.state},
			})

			result, err := svc.Get(context.Background(), "pay_9")
			require.NoError(t, err)
			require.Equal(t, tc.want, result.Status)
		})
	}

	t.Run("unknown payment maps to not found", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentsClient{err: apiErr(http.StatusNotFound, "")})
		_, err := svc.Get(context.Background(), "nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("provider outage is a service error", func(t *testing.T) {
		svc := NewPaymentsService(&fakePaymentsClient{err: apiErr(http.StatusBadGateway, "gateway details")})
		_, err := svc.Get(context.Background(), "pay_9")
		require.ErrorIs(t, err, domain.ErrService)
		require.NotContains(t, err.Error(), "gateway details")
	})
}
