package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "QUOTE"

const (
	SinkDynamoDB   = "dynamodb"
	SinkFilesystem = "filesystem"
	SinkNone       = "none"
)

type Config struct {
	App    AppConfig
	AWS    AWSConfig
	Tables TablesConfig
	Export ExportConfig
	Mail   MailConfig
}

// Load reads the configuration from the environment. Every field may be set
// either with its bare name (APP_PORT) or with the QUOTE_ prefix
// (QUOTE_APP_PORT); the prefixed name wins. Sections are processed one by one
// so envconfig does not fold the section name into the key.
func Load() (*Config, error) {
	var cfg Config
	sections := []any{&cfg.App, &cfg.AWS, &cfg.Tables, &cfg.Export, &cfg.Mail}
	for _, section := range sections {
		if err := envconfig.Process(EnvPrefix, section); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.Export.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env         string `envconfig:"APP_ENV" default:"development"`
	Port        int    `envconfig:"APP_PORT" default:"8080"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"quote-service"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "development") || strings.EqualFold(a.Env, "dev")
}

// AWSConfig defaults suit DynamoDB Local, which ignores credentials but still
// needs some to be set.
type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoEndpoint  string `envconfig:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Drafts  string `envconfig:"DRAFTS_TABLE" default:"draft_quotes"`
	Exports string `envconfig:"QUOTE_EXPORTS_TABLE" default:"quote_exports"`
}

type ExportConfig struct {
	Sink                string `envconfig:"EXPORT_SINK" default:"dynamodb"`
	Dir                 string `envconfig:"EXPORT_DIR" default:"exports"`
	DefaultRecipient    string `envconfig:"EXPORT_DEFAULT_RECIPIENT" default:"quotes@freight.local"`
	PricingFile         string `envconfig:"PRICING_TABLE_FILE"`
	BatchSkipValidation bool   `envconfig:"EXPORT_BATCH_SKIP_VALIDATION" default:"false"`
	ReferenceSequence   string `envconfig:"REFERENCE_SEQUENCE" default:"random"`
}

func (e ExportConfig) validate() error {
	switch e.Sink {
	case SinkDynamoDB, SinkFilesystem, SinkNone:
	default:
		return fmt.Errorf("unsupported EXPORT_SINK %q", e.Sink)
	}
	switch e.ReferenceSequence {
	case "random", "counter", "uuid":
		return nil
	}
	return fmt.Errorf("unsupported REFERENCE_SEQUENCE %q", e.ReferenceSequence)
}

// MailConfig selects the outbound mail transport. With Mock set, emails are
// logged and reported as sent.
type MailConfig struct {
	Mock     bool   `envconfig:"MAILER_MOCK" default:"true"`
	From     string `envconfig:"MAIL_FROM" default:"no-reply@freight.local"`
	SMTPHost string `envconfig:"SMTP_HOST"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
}
