package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the process environment. A .env file, when present,
// is loaded into the environment by cmd/api before MustLoad runs.
type Config struct {
	HTTPServer   HTTPServer
	LogConfig    LogConfig
	DynamoDB     DynamoDB
	ExchangeRate ExchangeRate
	Payments     Payments
}

type HTTPServer struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`
}

type LogConfig struct {
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogPretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

// DynamoDB holds connection and table settings.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them,
// hence the "local" defaults.
type DynamoDB struct {
	Region          string `env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	ProposalsTable string `env:"PROPOSALS_TABLE" env-default:"proposals"`
	CustomersTable string `env:"CUSTOMERS_TABLE" env-default:"customers"`
	LineItemsTable string `env:"LINE_ITEMS_TABLE" env-default:"line_items"`
	PaymentsTable  string `env:"PAYMENTS_TABLE" env-default:"proposal_payments"`
}

type ExchangeRate struct {
	FeedURL       string        `env:"EXCHANGE_RATE_FEED_URL" env-default:"https://www.tcmb.gov.tr/kurlar/today.xml"`
	Timeout       time.Duration `env:"EXCHANGE_RATE_TIMEOUT" env-default:"10s"`
	ProbeSchedule string        `env:"EXCHANGE_RATE_PROBE_SCHEDULE" env-default:"0 0 16 * * MON-FRI"`
}

type Payments struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	GatewayMock            bool   `env:"PAYMENT_GATEWAY_MOCK" env-default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to read config from environment: %v", err)
	}
	return cfg
}
