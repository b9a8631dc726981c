package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	texttemplate "text/template"

	"github.com/dmitrymomot/mailop/pkg/sanitizer"
)

// Mailer combines a Sender with a template Renderer.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer. The renderer may be nil when only SendRaw is used.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	Data     any      // Template data
	Tags     Tags     // Provider-specific tags
	Template string   // Template name ("base" resolves to "base.md")
	Subject  string   // Overrides the template subject, sent as is
	Layout   string   // Overrides the default layout
	From     string   // Overrides the default sender
	ReplyTo  string   // Reply-to address
	To       []string // Recipients
}

// Send renders a template and sends an email.
// Subject resolution: params.Subject > template metadata > config fallback.
// params.Subject is sent verbatim; the other two are executed against Data.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	to := recipients(params.To)
	if len(to) == 0 {
		return ErrNoRecipient
	}
	if m.renderer == nil {
		return ErrNoRenderer
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return err
	}

	subject := params.Subject
	if subject == "" {
		subject = m.config.FallbackSubject
		if fromMeta, ok := result.Metadata["Subject"].(string); ok {
			subject = fromMeta
		}

		subject, err = executeSubject(subject, params.Data)
		if err != nil {
			return err
		}
	}

	email := &Email{
		To:      to,
		Subject: subject,
		HTML:    result.HTML,
		Text:    result.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		Tags:    params.Tags,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// SendRaw sends a pre-built email without template rendering.
// A missing plain text part is derived from the HTML.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	msg := *email
	msg.To = recipients(email.To)

	if len(msg.To) == 0 {
		return ErrNoRecipient
	}
	if msg.Subject == "" {
		return ErrNoSubject
	}
	if msg.HTML == "" {
		return ErrNoContent
	}
	if msg.Text == "" {
		msg.Text = sanitizer.StripHTML(msg.HTML)
	}

	if err := m.sender.Send(ctx, &msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// executeSubject runs the subject through text/template so it can use {{.Field}}.
func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", fmt.Errorf("%w: parse subject: %v", ErrRenderFailed, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: execute subject: %v", ErrRenderFailed, err)
	}

	return buf.String(), nil
}
