package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	FeesServiceURL     string `env:"FEES_SERVICE_URL" envDefault:"http://fees-calculation:8081"`
	PaymentsServiceURL string `env:"PAYMENTS_SERVICE_URL" envDefault:"http://payment-provider:8082"`
	HTTPTimeoutS       int    `env:"HTTP_TIMEOUT_S" envDefault:"30"`

	// Endpoint names on the collaborators, resolved here so environments
	// can re-route without a rebuild.
	ProducerFeesEndpoint            string `env:"PRODUCER_FEES_ENDPOINT" envDefault:"producer/calculate-fees"`
	ComplianceSchemeFeesEndpoint    string `env:"COMPLIANCE_SCHEME_FEES_ENDPOINT" envDefault:"compliance-scheme/calculate-fees"`
	ReprocessorExporterFeesEndpoint string `env:"REPROCESSOR_EXPORTER_FEES_ENDPOINT" envDefault:"reprocessor-exporter/calculate-fees"`
	AccreditationFeesEndpoint       string `env:"ACCREDITATION_FEES_ENDPOINT" envDefault:"accreditation/calculate-fees"`
	ResubmissionFeesEndpoint        string `env:"RESUBMISSION_FEES_ENDPOINT" envDefault:"resubmission/calculate-fees"`
	PaymentsInitiateEndpoint        string `env:"PAYMENTS_INITIATE_ENDPOINT" envDefault:"payments/initiate"`
	PaymentsEndpoint                string `env:"PAYMENTS_ENDPOINT" envDefault:"payments"`

	EnableProducerFees            bool `env:"ENABLE_PRODUCER_FEES" envDefault:"true"`
	EnableComplianceSchemeFees    bool `env:"ENABLE_COMPLIANCE_SCHEME_FEES" envDefault:"true"`
	EnableReprocessorExporterFees bool `env:"ENABLE_REPROCESSOR_EXPORTER_FEES" envDefault:"true"`
	EnableAccreditationFees       bool `env:"ENABLE_ACCREDITATION_FEES" envDefault:"true"`
	EnableResubmissionFees        bool `env:"ENABLE_RESUBMISSION_FEES" envDefault:"true"`
	EnablePayments                bool `env:"ENABLE_PAYMENTS" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
