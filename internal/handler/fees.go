package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/epr-fees/payment-facade/internal/dto"
	"github.com/epr-fees/payment-facade/internal/logging"
	"github.com/epr-fees/payment-facade/internal/validation"
)

type producerFeesService interface {
	Calculate(ctx context.Context, req *dto.ProducerFeesRequest) (*dto.ProducerFeesResponse, error)
}

type complianceSchemeFeesService interface {
	Calculate(ctx context.Context, req *dto.ComplianceSchemeFeesRequest) (*dto.ComplianceSchemeFeesResponse, error)
}

type reprocessorExporterFeesService interface {
	Calculate(ctx context.Context, req *dto.ReprocessorExporterFeesRequest) (*dto.ReprocessorExporterFeesResponse, error)
}

type accreditationFeesService interface {
	Calculate(ctx context.Context, req *dto.AccreditationFeesRequest) (*dto.AccreditationFeesResponse, error)
}

type resubmissionFeesService interface {
	Calculate(ctx context.Context, req *dto.ResubmissionFeesRequest) (*dto.ResubmissionFeesResponse, error)
}

type FeesHandler struct {
	validator           *validation.Validator
	producer            producerFeesService
	complianceScheme    complianceSchemeFeesService
	reprocessorExporter reprocessorExporterFeesService
	accreditation       accreditationFeesService
	resubmission        resubmissionFeesService
}

func NewFeesHandler(
	validator *validation.Validator,
	producer producerFeesService,
	complianceScheme complianceSchemeFeesService,
	reprocessorExporter reprocessorExporterFeesService,
	accreditation accreditationFeesService,
	resubmission resubmissionFeesService,
) *FeesHandler {
	return &FeesHandler{
		validator:           validator,
		producer:            producer,
		complianceScheme:    complianceScheme,
		reprocessorExporter: reprocessorExporter,
		accreditation:       accreditation,
		resubmission:        resubmission,
	}
}

func (h *FeesHandler) CalculateProducerFees(w http.ResponseWriter, r *http.Request) {
	var req dto.ProducerFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := h.validator.ProducerFees(&req); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	resp, err := h.producer.Calculate(r.Context(), &req)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, resp)
}

func (h *FeesHandler) CalculateComplianceSchemeFees(w http.ResponseWriter, r *http.Request) {
	var req dto.ComplianceSchemeFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := h.validator.ComplianceSchemeFees(&req); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	resp, err := h.complianceScheme.Calculate(r.Context(), &req)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, resp)
}

func (h *FeesHandler) CalculateReprocessorExporterFees(w http.ResponseWriter, r *http.Request) {
	var req dto.ReprocessorExporterFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := h.validator.ReprocessorExporterFees(&req); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	resp, err := h.reprocessorExporter.Calculate(r.Context(), &req)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	if resp == nil {
		// Soft not-found: no fee applies to these details. Expected,
		// so no error logging.
		logging.FromContext(r.Context()).Info("no reprocessor/exporter fee found")
		RespondAppError(w, ErrFeeNotFound, nil)
		return
	}

	RespondSuccess(w, http.StatusOK, resp)
}

func (h *FeesHandler) CalculateAccreditationFees(w http.ResponseWriter, r *http.Request) {
	var req dto.AccreditationFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := h.validator.AccreditationFees(&req); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	resp, err := h.accreditation.Calculate(r.Context(), &req)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	if resp == nil {
		logging.FromContext(r.Context()).Info("no accreditation fee found")
		RespondAppError(w, ErrFeeNotFound, nil)
		return
	}

	RespondSuccess(w, http.StatusOK, resp)
}

func (h *FeesHandler) CalculateResubmissionFees(w http.ResponseWriter, r *http.Request) {
	var req dto.ResubmissionFeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := h.validator.ResubmissionFees(&req); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	resp, err := h.resubmission.Calculate(r.Context(), &req)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, resp)
}
