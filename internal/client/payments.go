package client

import (
	"context"
	"net/url"

	"github.com/epr-fees/payment-facade/internal/dto"
)

// PaymentsClient adapts the downstream payment provider.
type PaymentsClient struct {
	client           *Client
	initiateEndpoint string
	paymentsEndpoint string
}

func NewPaymentsClient(client *Client, initiateEndpoint, paymentsEndpoint string) *PaymentsClient {
	return &PaymentsClient{
		client:           client,
		initiateEndpoint: initiateEndpoint,
		paymentsEndpoint: paymentsEndpoint,
	}
}

func (c *PaymentsClient) Initiate(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	var resp dto.PaymentResponse
	if err := c.client.Post(ctx, c.initiateEndpoint, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *PaymentsClient) Get(ctx context.Context, paymentID string) (*dto.PaymentResponse, error) {
	var resp dto.PaymentResponse
	endpoint := c.paymentsEndpoint + "/" + url.PathEscape(paymentID)
	if err := c.client.Get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
