package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/epr-fees/payment-facade/internal/dto"
	"github.com/epr-fees/payment-facade/internal/logging"
)

// Stub of both downstream collaborators (fee calculation and payment
// provider) for local runs of the facade.
func main() {
	logging.Init("mock-downstream", "info", os.Getenv("APP_ENV"))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /producer/calculate-fees", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.ProducerFeesResponse{
			BaseFee:            decimal.NewFromInt(262000),
			SubsidiariesFee:    decimal.NewFromInt(55800),
			TotalFee:           decimal.NewFromInt(317800),
			OutstandingPayment: decimal.NewFromInt(317800),
		})
	})

	mux.HandleFunc("POST /compliance-scheme/calculate-fees", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.ComplianceSchemeFeesResponse{
			SchemeFee:          decimal.NewFromInt(138200),
			MemberFees:         decimal.NewFromInt(64600),
			TotalFee:           decimal.NewFromInt(202800),
			OutstandingPayment: decimal.NewFromInt(202800),
		})
	})

	mux.HandleFunc("POST /reprocessor-exporter/calculate-fees", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.ReprocessorExporterFeesResponse{
			PerSiteCharge:      decimal.NewFromInt(292100),
			TotalCharge:        decimal.NewFromInt(292100),
			OutstandingPayment: decimal.NewFromInt(292100),
		})
	})

	// Accreditation answers 404 so the facade's soft not-found path can
	// be exercised locally.
	mux.HandleFunc("POST /accreditation/calculate-fees", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("POST /resubmission/calculate-fees", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.ResubmissionFeesResponse{
			ResubmissionFee:    decimal.NewFromInt(71600),
			OutstandingPayment: decimal.NewFromInt(71600),
		})
	})

	mux.HandleFunc("POST /payments/initiate", func(w http.ResponseWriter, r *http.Request) {
		var req dto.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode("request body is not valid JSON")
			return
		}

		id := uuid.New().String()
		writeJSON(w, http.StatusCreated, dto.PaymentResponse{
			PaymentID:   id,
			Amount:      req.Amount,
			Reference:   req.Reference,
			Description: req.Description,
			ReturnURL:   req.ReturnURL,
			State:       dto.PaymentState{Status: "created"},
			Links: dto.PaymentLinks{
				Self:    &dto.Link{Href: fmt.Sprintf("http://localhost:8082/payments/%s", id), Method: http.MethodGet},
				NextURL: &dto.Link{Href: fmt.Sprintf("http://localhost:8082/next/%s", id), Method: http.MethodGet},
			},
		})
	})

	mux.HandleFunc("GET /payments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		writeJSON(w, http.StatusOK, dto.PaymentResponse{
			PaymentID: id,
			State:     dto.PaymentState{Status: "success", Finished: true},
			Links: dto.PaymentLinks{
				Self: &dto.Link{Href: fmt.Sprintf("http://localhost:8082/payments/%s", id), Method: http.MethodGet},
			},
		})
	})

	slog.Info("mock downstream started", "addr", ":8082")
	if err := http.ListenAndServe(":8082", mux); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
