// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailop/pkg/logger"
	"github.com/dmitrymomot/mailop/pkg/mailer"
	"github.com/dmitrymomot/mailop/pkg/mailer/resend"
	"github.com/dmitrymomot/mailop/pkg/mailer/smtp"
)

// Mail transports.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
)

var (
	ErrUnknownTransport = errors.New("config: unknown mail transport")
	ErrMissingValue     = errors.New("config: required value is missing")
)

// Config is the service configuration.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Transport       string        `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	// CORSOrigins enables CORS for the listed origins; empty disables it.
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Log    logger.Config
	Mailer mailer.Config
	Resend resend.Config
	SMTP   smtp.Config
}

// Load reads the given .env files, then parses the process environment.
// Missing .env files are skipped; variables already set in the process
// take precedence over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return parse(env.Options{})
}

// FromMap parses configuration from vars instead of the process environment.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the selected transport needs.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportSMTP:
		if c.SMTP.Host == "" {
			return fmt.Errorf("%w: SMTP_HOST", ErrMissingValue)
		}
		if c.SMTP.SenderEmail == "" {
			return fmt.Errorf("%w: SMTP_FROM_EMAIL", ErrMissingValue)
		}
	case TransportResend:
		if c.Resend.APIKey == "" {
			return fmt.Errorf("%w: RESEND_API_KEY", ErrMissingValue)
		}
		if c.Resend.SenderEmail == "" {
			return fmt.Errorf("%w: RESEND_FROM_EMAIL", ErrMissingValue)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrMissingValue)
	}
	return nil
}
