package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/epr-fees/payment-facade/internal/client"
	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/dto"
	"github.com/epr-fees/payment-facade/internal/logging"
)

type producerFeesClient interface {
	ProducerFees(ctx context.Context, req *dto.ProducerFeesRequest) (*dto.ProducerFeesResponse, error)
}

type complianceSchemeFeesClient interface {
	ComplianceSchemeFees(ctx context.Context, req *dto.ComplianceSchemeFeesRequest) (*dto.ComplianceSchemeFeesResponse, error)
}

type reprocessorExporterFeesClient interface {
	ReprocessorExporterFees(ctx context.Context, req *dto.ReprocessorExporterFeesRequest) (*dto.ReprocessorExporterFeesResponse, error)
}

type accreditationFeesClient interface {
	AccreditationFees(ctx context.Context, req *dto.AccreditationFeesRequest) (*dto.AccreditationFeesResponse, error)
}

type resubmissionFeesClient interface {
	ResubmissionFees(ctx context.Context, req *dto.ResubmissionFeesRequest) (*dto.ResubmissionFeesResponse, error)
}

// notFound reports whether the adapter signalled HTTP 404.
func notFound(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// mapClientError translates an adapter failure into the facade's error
// taxonomy. A downstream 400 is surfaced for field-level display with
// surrounding quotes trimmed; everything else is logged here, once, and
// replaced with an opaque service error so downstream internals never
// leak to callers.
func mapClientError(ctx context.Context, op string, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		msg := strings.Trim(strings.TrimSpace(apiErr.Body), `"`)
		return &domain.DownstreamValidationError{Message: msg}
	}

	logging.FromContext(ctx).Error("downstream call failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, domain.ErrService)
}

// ProducerFeesService orchestrates producer registration fee
// calculation. A downstream 404 is a hard failure for this sub-domain.
type ProducerFeesService struct {
	client producerFeesClient
}

func NewProducerFeesService(c producerFeesClient) *ProducerFeesService {
	return &ProducerFeesService{client: c}
}

func (s *ProducerFeesService) Calculate(ctx context.Context, req *dto.ProducerFeesRequest) (*dto.ProducerFeesResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("producer fees: %w", domain.ErrNilRequest)
	}
	resp, err := s.client.ProducerFees(ctx, req)
	if err != nil {
		return nil, mapClientError(ctx, "producer fees", err)
	}
	return resp, nil
}

type ComplianceSchemeFeesService struct {
	client complianceSchemeFeesClient
}

func NewComplianceSchemeFeesService(c complianceSchemeFeesClient) *ComplianceSchemeFeesService {
	return &ComplianceSchemeFeesService{client: c}
}

func (s *ComplianceSchemeFeesService) Calculate(ctx context.Context, req *dto.ComplianceSchemeFeesRequest) (*dto.ComplianceSchemeFeesResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("compliance scheme fees: %w", domain.ErrNilRequest)
	}
	resp, err := s.client.ComplianceSchemeFees(ctx, req)
	if err != nil {
		return nil, mapClientError(ctx, "compliance scheme fees", err)
	}
	return resp, nil
}

// ReprocessorExporterFeesService orchestrates reprocessor/exporter fee
// calculation. notFoundIsEmpty preserves this sub-domain's policy of
// treating a downstream 404 as "no fee found" rather than an error.
type ReprocessorExporterFeesService struct {
	client          reprocessorExporterFeesClient
	notFoundIsEmpty bool
}

func NewReprocessorExporterFeesService(c reprocessorExporterFeesClient) *ReprocessorExporterFeesService {
	return &ReprocessorExporterFeesService{client: c, notFoundIsEmpty: true}
}

func (s *ReprocessorExporterFeesService) Calculate(ctx context.Context, req *dto.ReprocessorExporterFeesRequest) (*dto.ReprocessorExporterFeesResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("reprocessor/exporter fees: %w", domain.ErrNilRequest)
	}
	resp, err := s.client.ReprocessorExporterFees(ctx, req)
	if err != nil {
		if s.notFoundIsEmpty && notFound(err) {
			return nil, nil
		}
		return nil, mapClientError(ctx, "reprocessor/exporter fees", err)
	}
	return resp, nil
}

// AccreditationFeesService shares the reprocessor/exporter sub-domain's
// soft not-found policy.
type AccreditationFeesService struct {
	client          accreditationFeesClient
	notFoundIsEmpty bool
}

func NewAccreditationFeesService(c accreditationFeesClient) *AccreditationFeesService {
	return &AccreditationFeesService{client: c, notFoundIsEmpty: true}
}

func (s *AccreditationFeesService) Calculate(ctx context.Context, req *dto.AccreditationFeesRequest) (*dto.AccreditationFeesResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("accreditation fees: %w", domain.ErrNilRequest)
	}
	resp, err := s.client.AccreditationFees(ctx, req)
	if err != nil {
		if s.notFoundIsEmpty && notFound(err) {
			return nil, nil
		}
		return nil, mapClientError(ctx, "accreditation fees", err)
	}
	return resp, nil
}

type ResubmissionFeesService struct {
	client resubmissionFeesClient
}

func NewResubmissionFeesService(c resubmissionFeesClient) *ResubmissionFeesService {
	return &ResubmissionFeesService{client: c}
}

func (s *ResubmissionFeesService) Calculate(ctx context.Context, req *dto.ResubmissionFeesRequest) (*dto.ResubmissionFeesResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("resubmission fees: %w", domain.ErrNilRequest)
	}
	resp, err := s.client.ResubmissionFees(ctx, req)
	if err != nil {
		return nil, mapClientError(ctx, "resubmission fees", err)
	}
	return resp, nil
}
