package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/epr-fees/payment-facade/internal/domain"
)

// FeeRequestBase holds the fields every fee-calculation request carries.
// Variants embed it rather than forming an inheritance chain, so new
// request shapes add fields instead of subclassing.
type FeeRequestBase struct {
	Regulator            domain.Regulator `json:"regulator"`
	ApplicationReference string           `json:"application_reference"`
	SubmissionDate       time.Time        `json:"submission_date"`
}

type ProducerFeesRequest struct {
	FeeRequestBase
	ProducerType                      domain.ProducerType `json:"producer_type"`
	NumberOfSubsidiaries              int                 `json:"number_of_subsidiaries"`
	NoOfSubsidiariesOnlineMarketplace int                 `json:"no_of_subsidiaries_online_marketplace"`
	IsProducerOnlineMarketplace       bool                `json:"is_producer_online_marketplace"`
	IsLateFeeApplicable               bool                `json:"is_late_fee_applicable"`
}

type ComplianceSchemeMember struct {
	MemberID                          string              `json:"member_id"`
	MemberType                        domain.ProducerType `json:"member_type"`
	NumberOfSubsidiaries              int                 `json:"number_of_subsidiaries"`
	NoOfSubsidiariesOnlineMarketplace int                 `json:"no_of_subsidiaries_online_marketplace"`
	IsOnlineMarketplace               bool                `json:"is_online_marketplace"`
}

type ComplianceSchemeFeesRequest struct {
	FeeRequestBase
	Members []ComplianceSchemeMember `json:"members"`
}

type ReprocessorExporterFeesRequest struct {
	FeeRequestBase
	RequestorType         domain.RequestorType `json:"requestor_type"`
	MaterialType          domain.MaterialType  `json:"material_type"`
	NumberOfOverseasSites int                  `json:"number_of_overseas_sites"`
}

type AccreditationFeesRequest struct {
	FeeRequestBase
	RequestorType         domain.RequestorType `json:"requestor_type"`
	TonnageBand           domain.TonnageBand   `json:"tonnage_band"`
	NumberOfOverseasSites int                  `json:"number_of_overseas_sites"`
}

type ResubmissionFeesRequest struct {
	Regulator        domain.Regulator `json:"regulator"`
	ReferenceNumber  string           `json:"reference_number"`
	ResubmissionDate time.Time        `json:"resubmission_date"`
}

// PreviousPaymentDetail describes a payment already made against an
// application, as reported by the fee-calculation service.
type PreviousPaymentDetail struct {
	PaymentMode   string          `json:"payment_mode"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
}

type ProducerFeesResponse struct {
	BaseFee               decimal.Decimal        `json:"base_fee"`
	OnlineMarketplaceFee  decimal.Decimal        `json:"online_marketplace_fee"`
	SubsidiariesFee       decimal.Decimal        `json:"subsidiaries_fee"`
	TotalFee              decimal.Decimal        `json:"total_fee"`
	PreviousPayment       decimal.Decimal        `json:"previous_payment"`
	OutstandingPayment    decimal.Decimal        `json:"outstanding_payment"`
	PreviousPaymentDetail *PreviousPaymentDetail `json:"previous_payment_detail,omitempty"`
}

type ComplianceSchemeFeesResponse struct {
	SchemeFee             decimal.Decimal        `json:"scheme_fee"`
	MemberFees            decimal.Decimal        `json:"member_fees"`
	TotalFee              decimal.Decimal        `json:"total_fee"`
	PreviousPayment       decimal.Decimal        `json:"previous_payment"`
	OutstandingPayment    decimal.Decimal        `json:"outstanding_payment"`
	PreviousPaymentDetail *PreviousPaymentDetail `json:"previous_payment_detail,omitempty"`
}

type ReprocessorExporterFeesResponse struct {
	PerSiteCharge      decimal.Decimal `json:"per_site_charge"`
	TotalCharge        decimal.Decimal `json:"total_charge"`
	PreviousPayment    decimal.Decimal `json:"previous_payment"`
	OutstandingPayment decimal.Decimal `json:"outstanding_payment"`
}

type AccreditationFeesResponse struct {
	BandCharge            decimal.Decimal        `json:"band_charge"`
	PerSiteCharge         decimal.Decimal        `json:"per_site_charge"`
	TotalFee              decimal.Decimal        `json:"total_fee"`
	PreviousPayment       decimal.Decimal        `json:"previous_payment"`
	OutstandingPayment    decimal.Decimal        `json:"outstanding_payment"`
	PreviousPaymentDetail *PreviousPaymentDetail `json:"previous_payment_detail,omitempty"`
}

type ResubmissionFeesResponse struct {
	ResubmissionFee    decimal.Decimal `json:"resubmission_fee"`
	PreviousPayment    decimal.Decimal `json:"previous_payment"`
	OutstandingPayment decimal.Decimal `json:"outstanding_payment"`
}
