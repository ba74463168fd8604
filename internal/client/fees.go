package client

import (
	"context"

	"github.com/epr-fees/payment-facade/internal/dto"
)

// FeesEndpoints names the paths on the fee-calculation service. They are
// resolved from configuration so environments can route without a
// rebuild.
type FeesEndpoints struct {
	Producer            string
	ComplianceScheme    string
	ReprocessorExporter string
	Accreditation       string
	Resubmission        string
}

// FeesClient adapts the downstream fee-calculation service.
type FeesClient struct {
	client    *Client
	endpoints FeesEndpoints
}

func NewFeesClient(client *Client, endpoints FeesEndpoints) *FeesClient {
	return &FeesClient{client: client, endpoints: endpoints}
}

func (c *FeesClient) ProducerFees(ctx context.Context, req *dto.ProducerFeesRequest) (*dto.ProducerFeesResponse, error) {
	var resp dto.ProducerFeesResponse
	if err := c.client.Post(ctx, c.endpoints.Producer, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *FeesClient) ComplianceSchemeFees(ctx context.Context, req *dto.ComplianceSchemeFeesRequest) (*dto.ComplianceSchemeFeesResponse, error) {
	var resp dto.ComplianceSchemeFeesResponse
	if err := c.client.Post(ctx, c.endpoints.ComplianceScheme, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *FeesClient) ReprocessorExporterFees(ctx context.Context, req *dto.ReprocessorExporterFeesRequest) (*dto.ReprocessorExporterFeesResponse, error) {
	var resp dto.ReprocessorExporterFeesResponse
	if err := c.client.Post(ctx, c.endpoints.ReprocessorExporter, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *FeesClient) AccreditationFees(ctx context.Context, req *dto.AccreditationFeesRequest) (*dto.AccreditationFeesResponse, error) {
	var resp dto.AccreditationFeesResponse
	if err := c.client.Post(ctx, c.endpoints.Accreditation, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *FeesClient) ResubmissionFees(ctx context.Context, req *dto.ResubmissionFeesRequest) (*dto.ResubmissionFeesResponse, error) {
	var resp dto.ResubmissionFeesResponse
	if err := c.client.Post(ctx, c.endpoints.Resubmission, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
