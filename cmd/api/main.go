package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epr-fees/payment-facade/internal/client"
	"github.com/epr-fees/payment-facade/internal/config"
	"github.com/epr-fees/payment-facade/internal/domain"
	"github.com/epr-fees/payment-facade/internal/handler"
	"github.com/epr-fees/payment-facade/internal/logging"
	"github.com/epr-fees/payment-facade/internal/middleware"
	"github.com/epr-fees/payment-facade/internal/service"
	"github.com/epr-fees/payment-facade/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("fees-facade", cfg.LogLevel, cfg.AppEnv)

	timeout := time.Duration(cfg.HTTPTimeoutS) * time.Second
	feesBase := client.New("fees-calc", cfg.FeesServiceURL, timeout)
	paymentsBase := client.New("pay-provider", cfg.PaymentsServiceURL, timeout)

	feesClient := client.NewFeesClient(feesBase, client.FeesEndpoints{
		Producer:            cfg.ProducerFeesEndpoint,
		ComplianceScheme:    cfg.ComplianceSchemeFeesEndpoint,
		ReprocessorExporter: cfg.ReprocessorExporterFeesEndpoint,
		Accreditation:       cfg.AccreditationFeesEndpoint,
		Resubmission:        cfg.ResubmissionFeesEndpoint,
	})
	paymentsClient := client.NewPaymentsClient(paymentsBase, cfg.PaymentsInitiateEndpoint, cfg.PaymentsEndpoint)

	validator := validation.New(domain.DefaultRegulators(), validation.SystemClock())

	feesHandler := handler.NewFeesHandler(
		validator,
		service.NewProducerFeesService(feesClient),
		service.NewComplianceSchemeFeesService(feesClient),
		service.NewReprocessorExporterFeesService(feesClient),
		service.NewAccreditationFeesService(feesClient),
		service.NewResubmissionFeesService(feesClient),
	)
	paymentHandler := handler.NewPaymentHandler(validator, service.NewPaymentsService(paymentsClient))
	healthHandler := handler.NewHealthHandler(
		handler.Check{Name: "fees-calc", Probe: feesBase.Health},
		handler.Check{Name: "pay-provider", Probe: paymentsBase.Health},
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ping", healthHandler.Ping)

	// A disabled domain's routes are simply not registered.
	if cfg.EnableProducerFees {
		mux.HandleFunc("POST /api/v1/producer/calculate-fees", feesHandler.CalculateProducerFees)
	}
	if cfg.EnableComplianceSchemeFees {
		mux.HandleFunc("POST /api/v1/compliance-scheme/calculate-fees", feesHandler.CalculateComplianceSchemeFees)
	}
	if cfg.EnableReprocessorExporterFees {
		mux.HandleFunc("POST /api/v1/reprocessor-exporter/calculate-fees", feesHandler.CalculateReprocessorExporterFees)
	}
	if cfg.EnableAccreditationFees {
		mux.HandleFunc("POST /api/v1/accreditation/calculate-fees", feesHandler.CalculateAccreditationFees)
	}
	if cfg.EnableResubmissionFees {
		mux.HandleFunc("POST /api/v1/resubmission/calculate-fees", feesHandler.CalculateResubmissionFees)
	}
	if cfg.EnablePayments {
		mux.HandleFunc("POST /api/v1/payments/initiate", paymentHandler.Initiate)
		mux.HandleFunc("GET /api/v1/payments/{id}", paymentHandler.Get)
	}

	root := middleware.Tracing(middleware.Logging(middleware.Recovery(mux)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
