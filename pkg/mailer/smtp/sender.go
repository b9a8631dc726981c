package smtp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/mailop/pkg/mailer"
)

// ErrNoSender is returned when neither the message nor the config names a sender.
var ErrNoSender = errors.New("smtp: sender address is not configured")

// Sender implements mailer.Sender over SMTP.
// Every send dials a fresh connection.
type Sender struct {
	config Config
}

var _ mailer.Sender = (*Sender)(nil)

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}

// Ping dials the server and closes the connection.
// Use it as a readiness check.
func (s *Sender) Ping(ctx context.Context) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: dial: %w", err)
	}
	return client.Close()
}

func (s *Sender) message(email *mailer.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	switch {
	case email.From != "":
		if err := msg.From(email.From); err != nil {
			return nil, fmt.Errorf("smtp: set from: %w", err)
		}
	case s.config.SenderEmail != "":
		if err := msg.FromFormat(s.config.SenderName, s.config.SenderEmail); err != nil {
			return nil, fmt.Errorf("smtp: set from: %w", err)
		}
	default:
		return nil, ErrNoSender
	}

	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("smtp: set to: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("smtp: set reply-to: %w", err)
		}
	}

	// Header injection guard.
	msg.Subject(strings.NewReplacer("\r", "", "\n", "").Replace(email.Subject))

	if email.Text != "" {
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}

	return msg, nil
}

func (s *Sender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
	}
	if s.config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.config.Timeout))
	}
	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}
	if s.config.RequireTLS {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: create client: %w", err)
	}
	return client, nil
}
