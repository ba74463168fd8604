package validation

import (
	"fmt"
	"time"

	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/dto"
)

// maxOverseasSites caps the overseas-site count an exporter may declare.
const maxOverseasSites = 100

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator evaluates per-request-type rule sets. Rules collect every
// applicable failure rather than short-circuiting; the only declared
// cascade-stop is inside the date rule, where a non-UTC value suppresses
// the future-date check.
type Validator struct {
	regulators domain.RegulatorSet
	clock      Clock
}

func New(regulators domain.RegulatorSet, clock Clock) *Validator {
	return &Validator{regulators: regulators, clock: clock}
}

func (v *Validator) regulator(field string, r domain.Regulator) []FieldError {
	if r == "" {
		return []FieldError{{Field: field, Message: "required"}}
	}
	if !v.regulators.Contains(r) {
		return []FieldError{{Field: field, Message: "is not a supported regulator"}}
	}
	return nil
}

func (v *Validator) date(field string, t time.Time) []FieldError {
	if t.IsZero() {
		return []FieldError{{Field: field, Message: "required"}}
	}
	if t.Location() != time.UTC {
		// Comparing a non-UTC value against now would report a
		// meaningless future-date failure, so stop here.
		return []FieldError{{Field: field, Message: "must be expressed in UTC"}}
	}
	if t.After(v.clock.Now().UTC()) {
		return []FieldError{{Field: field, Message: "cannot be in the future"}}
	}
	return nil
}

// overseasSiteRules dispatches on the requestor-type discriminator so
// each branch is independently testable.
var overseasSiteRules = map[domain.RequestorType]func(n int) *FieldError{
	domain.RequestorTypeExporter: func(n int) *FieldError {
		if n <= 0 {
			return &FieldError{Field: "number_of_overseas_sites", Message: "must be greater than 0 for exporters"}
		}
		if n > maxOverseasSites {
			return &FieldError{Field: "number_of_overseas_sites", Message: fmt.Sprintf("must not exceed %d", maxOverseasSites)}
		}
		return nil
	},
	domain.RequestorTypeReprocessor: func(n int) *FieldError {
		if n != 0 {
			return &FieldError{Field: "number_of_overseas_sites", Message: "must be 0 for reprocessors"}
		}
		return nil
	},
}

func overseasSites(requestor domain.RequestorType, n int) []FieldError {
	rule, ok := overseasSiteRules[requestor]
	if !ok {
		return []FieldError{{Field: "requestor_type", Message: "must be Exporter or Reprocessor"}}
	}
	if fe := rule(n); fe != nil {
		return []FieldError{*fe}
	}
	return nil
}

func (v *Validator) ProducerFees(req *dto.ProducerFeesRequest) []FieldError {
	var errs []FieldError

	errs = append(errs, v.regulator("regulator", req.Regulator)...)
	errs = append(errs, v.date("submission_date", req.SubmissionDate)...)

	if req.ProducerType == "" {
		errs = append(errs, FieldError{Field: "producer_type", Message: "required"})
	} else if !req.ProducerType.IsValid() {
		errs = append(errs, FieldError{Field: "producer_type", Message: "must be LARGE or SMALL"})
	}

	if req.NumberOfSubsidiaries < 0 {
		errs = append(errs, FieldError{Field: "number_of_subsidiaries", Message: "must not be negative"})
	}
	if req.NoOfSubsidiariesOnlineMarketplace < 0 {
		errs = append(errs, FieldError{Field: "no_of_subsidiaries_online_marketplace", Message: "must not be negative"})
	} else if req.NoOfSubsidiariesOnlineMarketplace > req.NumberOfSubsidiaries {
		errs = append(errs, FieldError{
			Field:   "no_of_subsidiaries_online_marketplace",
			Message: "must not exceed number_of_subsidiaries",
		})
	}

	return errs
}

func (v *Validator) ComplianceSchemeFees(req *dto.ComplianceSchemeFeesRequest) []FieldError {
	var errs []FieldError

	errs = append(errs, v.regulator("regulator", req.Regulator)...)
	errs = append(errs, v.date("submission_date", req.SubmissionDate)...)

	if len(req.Members) == 0 {
		errs = append(errs, FieldError{Field: "members", Message: "at least one member is required"})
	}

	for i, m := range req.Members {
		prefix := fmt.Sprintf("members[%d].", i)

		if m.MemberID == "" {
			errs = append(errs, FieldError{Field: prefix + "member_id", Message: "required"})
		}
		if m.MemberType == "" {
			errs = append(errs, FieldError{Field: prefix + "member_type", Message: "required"})
		} else if !m.MemberType.IsValid() {
			errs = append(errs, FieldError{Field: prefix + "member_type", Message: "must be LARGE or SMALL"})
		}
		if m.NumberOfSubsidiaries < 0 {
			errs = append(errs, FieldError{Field: prefix + "number_of_subsidiaries", Message: "must not be negative"})
		}
		if m.NoOfSubsidiariesOnlineMarketplace < 0 {
			errs = append(errs, FieldError{Field: prefix + "no_of_subsidiaries_online_marketplace", Message: "must not be negative"})
		} else if m.NoOfSubsidiariesOnlineMarketplace > m.NumberOfSubsidiaries {
			errs = append(errs, FieldError{
				Field:   prefix + "no_of_subsidiaries_online_marketplace",
				Message: "must not exceed number_of_subsidiaries",
			})
		}
	}

	return errs
}

func (v *Validator) ReprocessorExporterFees(req *dto.ReprocessorExporterFeesRequest) []FieldError {
	var errs []FieldError

	errs = append(errs, v.regulator("regulator", req.Regulator)...)
	errs = append(errs, v.date("submission_date", req.SubmissionDate)...)

	if req.MaterialType == "" {
		errs = append(errs, FieldError{Field: "material_type", Message: "required"})
	} else if !req.MaterialType.IsValid() {
		errs = append(errs, FieldError{Field: "material_type", Message: "is not a recognised material"})
	}

	errs = append(errs, overseasSites(req.RequestorType, req.NumberOfOverseasSites)...)

	return errs
}

func (v *Validator) AccreditationFees(req *dto.AccreditationFeesRequest) []FieldError {
	var errs []FieldError

	errs = append(errs, v.regulator("regulator", req.Regulator)...)
	errs = append(errs, v.date("submission_date", req.SubmissionDate)...)

	if req.TonnageBand == "" {
		errs = append(errs, FieldError{Field: "tonnage_band", Message: "required"})
	} else if !req.TonnageBand.IsValid() {
		errs = append(errs, FieldError{Field: "tonnage_band", Message: "is not a recognised tonnage band"})
	}

	errs = append(errs, overseasSites(req.RequestorType, req.NumberOfOverseasSites)...)

	return errs
}

func (v *Validator) ResubmissionFees(req *dto.ResubmissionFeesRequest) []FieldError {
	var errs []FieldError

	errs = append(errs, v.regulator("regulator", req.Regulator)...)

	if req.ReferenceNumber == "" {
		errs = append(errs, FieldError{Field: "reference_number", Message: "required"})
	}

	errs = append(errs, v.date("resubmission_date", req.ResubmissionDate)...)

	return errs
}

func (v *Validator) Payment(req *dto.PaymentRequest) []FieldError {
	var errs []FieldError

	if req.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "must be greater than 0"})
	}
	if req.Reference == "" {
		errs = append(errs, FieldError{Field: "reference", Message: "required"})
	}
	if req.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "required"})
	}
	if req.ReturnURL == "" {
		errs = append(errs, FieldError{Field: "return_url", Message: "required"})
	}

	errs = append(errs, v.regulator("regulator", req.Regulator)...)

	return errs
}
