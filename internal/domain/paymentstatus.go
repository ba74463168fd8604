package domain

import (
	"errors"
	"fmt"
	"strings"
)

type PaymentStatus string

const (
	PaymentStatusInitiated     PaymentStatus = "Initiated"
	PaymentStatusInProgress    PaymentStatus = "InProgress"
	PaymentStatusSuccess       PaymentStatus = "Success"
	PaymentStatusFailed        PaymentStatus = "Failed"
	PaymentStatusError         PaymentStatus = "Error"
	PaymentStatusUserCancelled PaymentStatus = "UserCancelled"
)

// GOV.UK Pay signals a user-cancelled card journey with this code on a
// "failed" state.
const errorCodeUserCancelled = "P0030"

var (
	ErrSuccessWithErrorCode = errors.New("success status must not carry an error code")
	ErrMissingErrorCode     = errors.New("error code is required for this status")
	ErrStatusNotRecognised  = errors.New("payment status not recognised")
)

// MapPaymentStatus translates a provider state into the facade's closed
// status set. Every combination outside the branches below is a hard
// error; there is no silent default.
func MapPaymentStatus(status, errorCode string) (PaymentStatus, error) {
	switch strings.ToLower(status) {
	case "success":
		if errorCode != "" {
			return "", fmt.Errorf("status %q with code %q: %w", status, errorCode, ErrSuccessWithErrorCode)
		}
		return PaymentStatusSuccess, nil
	case "failed":
		if errorCode == "" {
			return "", fmt.Errorf("status %q: %w", status, ErrMissingErrorCode)
		}
		if errorCode == errorCodeUserCancelled {
			return PaymentStatusUserCancelled, nil
		}
		return PaymentStatusFailed, nil
	case "error":
		if errorCode == "" {
			return "", fmt.Errorf("status %q: %w", status, ErrMissingErrorCode)
		}
		return PaymentStatusError, nil
	case "created":
		return PaymentStatusInitiated, nil
	case "started", "submitted", "capturable":
		return PaymentStatusInProgress, nil
	default:
		return "", fmt.Errorf("status %q: %w", status, ErrStatusNotRecognised)
	}
}
