package smtp

import "time"

// Config holds SMTP connection parameters.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host        string        `env:"SMTP_HOST" envDefault:"localhost"`
	Username    string        `env:"SMTP_USERNAME"`
	Password    string        `env:"SMTP_PASSWORD"`
	SenderEmail string        `env:"SMTP_FROM_EMAIL"`
	SenderName  string        `env:"SMTP_FROM_NAME"`
	Port        int           `env:"SMTP_PORT" envDefault:"1025"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	// RequireTLS makes STARTTLS mandatory; otherwise it is used when offered.
	RequireTLS bool `env:"SMTP_REQUIRE_TLS" envDefault:"false"`
}
