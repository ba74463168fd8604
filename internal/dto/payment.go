package dto

import (
	"github.com/epr-fees/payment-facade/internal/domain"
)

type PaymentRequest struct {
	Amount      int64            `json:"amount"`
	Reference   string           `json:"reference"`
	Description string           `json:"description"`
	ReturnURL   string           `json:"return_url"`
	Regulator   domain.Regulator `json:"regulator"`
}

// PaymentState is the provider's view of where a payment journey is.
type PaymentState struct {
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Message  string `json:"message,omitempty"`
	Code     string `json:"code,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Method string `json:"method"`
}

type PaymentLinks struct {
	Self    *Link `json:"self,omitempty"`
	NextURL *Link `json:"next_url,omitempty"`
	Events  *Link `json:"events,omitempty"`
	Refunds *Link `json:"refunds,omitempty"`
	Cancel  *Link `json:"cancel,omitempty"`
}

// PaymentResponse is the provider's payment resource as received on the
// wire.
type PaymentResponse struct {
	PaymentID   string       `json:"payment_id"`
	Amount      int64        `json:"amount"`
	Reference   string       `json:"reference"`
	Description string       `json:"description"`
	ReturnURL   string       `json:"return_url"`
	State       PaymentState `json:"state"`
	Links       PaymentLinks `json:"links"`
}

// PaymentResult is what the facade returns to the front-end: the
// provider resource plus the mapped domain status and the URL the user
// should be sent to next.
type PaymentResult struct {
	PaymentID   string               `json:"payment_id"`
	Amount      int64                `json:"amount"`
	Reference   string               `json:"reference"`
	Description string               `json:"description"`
	Status      domain.PaymentStatus `json:"status"`
	NextURL     string               `json:"next_url,omitempty"`
	Links       PaymentLinks         `json:"links"`
}
