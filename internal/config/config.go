// Package config loads service settings from the environment, optionally
// layered over a config file.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	AWS struct {
		Region          string
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"aws"`

	DynamoDB struct {
		Endpoint        string
		CustomersTable  string `mapstructure:"customers_table"`
		JobsTable       string `mapstructure:"jobs_table"`
		JobNumbersTable string `mapstructure:"job_numbers_table"`
	} `mapstructure:"dynamodb"`

	Workshop struct {
		Name         string
		CurrencyCode string `mapstructure:"currency_code"`
		Locale       string
		TaxRate      string `mapstructure:"tax_rate"`
	} `mapstructure:"workshop"`

	Payments struct {
		AccessToken       string `mapstructure:"access_token"`
		Mock              string
		DefaultPayerEmail string `mapstructure:"default_payer_email"`
	} `mapstructure:"payments"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// setting binds a config key to its environment variables and default.
type setting struct {
	key  string
	envs []string
	def  any
}

var settings = []setting{
	{"app.env", []string{"APP_ENV"}, "dev"},
	{"http.addr", []string{"HTTP_ADDR"}, ":8080"},
	{"aws.region", []string{"AWS_REGION"}, "us-east-1"},
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	{"aws.access_key_id", []string{"AWS_ACCESS_KEY_ID"}, "local"},
	{"aws.secret_access_key", []string{"AWS_SECRET_ACCESS_KEY"}, "local"},
	{"dynamodb.endpoint", []string{"DYNAMODB_ENDPOINT"}, ""},
	{"dynamodb.customers_table", []string{"CUSTOMERS_TABLE"}, "customers"},
	{"dynamodb.jobs_table", []string{"JOBS_TABLE"}, "jobs"},
	{"dynamodb.job_numbers_table", []string{"JOB_NUMBERS_TABLE"}, "job_numbers"},
	{"workshop.name", []string{"WORKSHOP_NAME"}, "Scale Workshop"},
	{"workshop.currency_code", []string{"CURRENCY_CODE"}, "USD"},
	{"workshop.locale", []string{"LOCALE"}, "en"},
	{"workshop.tax_rate", []string{"TAX_RATE"}, "0.10"},
	{"payments.access_token", []string{"MERCADOPAGO_ACCESS_TOKEN"}, ""},
	{"payments.mock", []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"}, ""},
	{"payments.default_payer_email", []string{"MERCADOPAGO_TEST_PAYER_EMAIL"}, ""},
	{"metrics.enabled", []string{"METRICS_ENABLED"}, true},
}

// Load reads the environment. When path is not empty the file is read first
// and environment variables override it.
func Load(path string) (Config, error) {
	v := viper.New()
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
		if err := v.BindEnv(append([]string{s.key}, s.envs...)...); err != nil {
			return Config{}, err
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if _, err := c.TaxRate(); err != nil {
		return c, err
	}
	return c, nil
}

// TaxRate parses the configured rate, e.g. "0.10".
func (c Config) TaxRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.Workshop.TaxRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid TAX_RATE %q: %w", c.Workshop.TaxRate, err)
	}
	return rate, nil
}

// PaymentMockEnabled reports whether the payment gateway should fake approvals.
func (c Config) PaymentMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.Payments.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func (c Config) IsDev() bool {
	return c.App.Env == "dev"
}
