package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/epr-fees/payment-facade/internal/client"
	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/dto"
)

type fakeFeesClient struct {
	producerResp      *dto.ProducerFeesResponse
	complianceResp    *dto.ComplianceSchemeFeesResponse
	repExpResp        *dto.ReprocessorExporterFeesResponse
	accreditationResp *dto.AccreditationFeesResponse
	resubmissionResp  *dto.ResubmissionFeesResponse
	err               error
}

func (f *fakeFeesClient) ProducerFees(context.Context, *dto.ProducerFeesRequest) (*dto.ProducerFeesResponse, error) {
	return f.producerResp, f.err
}

func (f *fakeFeesClient) ComplianceSchemeFees(context.Context, *dto.ComplianceSchemeFeesRequest) (*dto.ComplianceSchemeFeesResponse, error) {
	return f.complianceResp, f.err
}

func (f *fakeFeesClient) ReprocessorExporterFees(context.Context, *dto.ReprocessorExporterFeesRequest) (*dto.ReprocessorExporterFeesResponse, error) {
	return f.repExpResp, f.err
}

func (f *fakeFeesClient) AccreditationFees(context.Context, *dto.AccreditationFeesRequest) (*dto.AccreditationFeesResponse, error) {
	return f.accreditationResp, f.err
}

func (f *fakeFeesClient) ResubmissionFees(context.Context, *dto.ResubmissionFeesRequest) (*dto.ResubmissionFeesResponse, error) {
	return f.resubmissionResp, f.err
}

func apiErr(status int, body string) *client.APIError {
	return &client.APIError{StatusCode: status, Body: body}
}

func TestProducerFeesCalculate(t *testing.T) {
	t.Run("returns the downstream response unchanged", func(t *testing.T) {
		want := &dto.ProducerFeesResponse{TotalFee: decimal.NewFromInt(1000)}
		svc := NewProducerFeesService(&fakeFeesClient{producerResp: want})

		got, err := svc.Calculate(context.Background(), &dto.ProducerFeesRequest{})
		require.NoError(t, err)
		require.Same(t, want, got)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		svc := NewProducerFeesService(&fakeFeesClient{})
		_, err := svc.Calculate(context.Background(), nil)
		require.ErrorIs(t, err, domain.ErrNilRequest)
	})

	t.Run("404 is a hard error for producers", func(t *testing.T) {
		svc := NewProducerFeesService(&fakeFeesClient{err: apiErr(http.StatusNotFound, "")})
		_, err := svc.Calculate(context.Background(), &dto.ProducerFeesRequest{})
		require.ErrorIs(t, err, domain.ErrService)
	})

	t.Run("400 propagates with quotes stripped", func(t *testing.T) {
		svc := NewProducerFeesService(&fakeFeesClient{err: apiErr(http.StatusBadRequest, `"bad input"`)})
		_, err := svc.Calculate(context.Background(), &dto.ProducerFeesRequest{})

		var vErr *domain.DownstreamValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "bad input", vErr.Message)
	})

	t.Run("5xx is an opaque service error", func(t *testing.T) {
		svc := NewProducerFeesService(&fakeFeesClient{err: apiErr(http.StatusBadGateway, "internal stack trace")})
		_, err := svc.Calculate(context.Background(), &dto.ProducerFeesRequest{})

		require.ErrorIs(t, err, domain.ErrService)
		require.NotContains(t, err.Error(), "internal stack trace")
	})
}

func TestSoftNotFound(t *testing.T) {
	t.Run("reprocessor/exporter 404 returns absent result", func(t *testing.T) {
		svc := NewReprocessorExporterFeesService(&fakeFeesClient{err: apiErr(http.StatusNotFound, "")})
		resp, err := svc.Calculate(context.Background(), &dto.ReprocessorExporterFeesRequest{})
		require.NoError(t, err)
		require.Nil(t, resp)
	})

	t.Run("accreditation 404 returns absent result", func(t *testing.T) {
		svc := NewAccreditationFeesService(&fakeFeesClient{err: apiErr(http.StatusNotFound, "")})
		resp, err := svc.Calculate(context.Background(), &dto.AccreditationFeesRequest{})
		require.NoError(t, err)
		require.Nil(t, resp)
	})

	t.Run("soft not-found does not swallow other statuses", func(t *testing.T) {
		svc := NewAccreditationFeesService(&fakeFeesClient{err: apiErr(http.StatusInternalServerError, "boom")})
		_, err := svc.Calculate(context.Background(), &dto.AccreditationFeesRequest{})
		require.ErrorIs(t, err, domain.ErrService)
	})

	t.Run("compliance scheme 404 stays hard", func(t *testing.T) {
		svc := NewComplianceSchemeFeesService(&fakeFeesClient{err: apiErr(http.StatusNotFound, "")})
		_, err := svc.Calculate(context.Background(), &dto.ComplianceSchemeFeesRequest{})
		require.ErrorIs(t, err, domain.ErrService)
	})

	t.Run("resubmission 404 stays hard", func(t *testing.T) {
		svc := NewResubmissionFeesService(&fakeFeesClient{err: apiErr(http.StatusNotFound, "")})
		_, err := svc.Calculate(context.Background(), &dto.ResubmissionFeesRequest{})
		require.ErrorIs(t, err, domain.ErrService)
	})
}

func TestQuoteTrimming(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "json string body", body: `"bad input"`, want: "bad input"},
		{name: "plain body", body: "bad input", want: "bad input"},
		{name: "whitespace around quotes", body: "  \"bad input\"\n", want: "bad input"},
		{name: "empty body", body: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewResubmissionFeesService(&fakeFeesClient{err: apiErr(http.StatusBadRequest, tc.body)})
			_, err := svc.Calculate(context.Background(), &dto.ResubmissionFeesRequest{})

			var vErr *domain.DownstreamValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.want, vErr.Message)
		})
	}
}

func TestRemainingServicesDelegate(t *testing.T) {
	csWant := &dto.ComplianceSchemeFeesResponse{TotalFee: decimal.NewFromInt(500)}
	cs, err := NewComplianceSchemeFeesService(&fakeFeesClient{complianceResp: csWant}).
		Calculate(context.Background(), &dto.ComplianceSchemeFeesRequest{})
	require.NoError(t, err)
	require.Same(t, csWant, cs)

	reWant := &dto.ReprocessorExporterFeesResponse{TotalCharge: decimal.NewFromInt(2921)}
	re, err := NewReprocessorExporterFeesService(&fakeFeesClient{repExpResp: reWant}).
		Calculate(context.Background(), &dto.ReprocessorExporterFeesRequest{})
	require.NoError(t, err)
	require.Same(t, reWant, re)

	accWant := &dto.AccreditationFeesResponse{TotalFee: decimal.NewFromInt(3000)}
	acc, err := NewAccreditationFeesService(&fakeFeesClient{accreditationResp: accWant}).
		Calculate(context.Background(), &dto.AccreditationFeesRequest{})
	require.NoError(t, err)
	require.Same(t, accWant, acc)

	rsWant := &dto.ResubmissionFeesResponse{ResubmissionFee: decimal.NewFromInt(750)}
	rs, err := NewResubmissionFeesService(&fakeFeesClient{resubmissionResp: rsWant}).
		Calculate(context.Background(), &dto.ResubmissionFeesRequest{})
	require.NoError(t, err)
	require.Same(t, rsWant, rs)
}
