package mailop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailop"
	"github.com/dmitrymomot/mailop/pkg/mailer"
	"github.com/dmitrymomot/mailop/templates"
)

func newRecordingMailer(t *testing.T, sendErr error) (*mailer.Mailer, *[]*mailer.Email) {
	t.Helper()

	var sent []*mailer.Email
	sender := mailer.SenderFunc(func(_ context.Context, email *mailer.Email) error {
		sent = append(sent, email)
		return sendErr
	})

	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{
		FallbackSubject: "Notification",
		DefaultLayout:   "base.html",
	})
	return m, &sent
}

func TestMailerService_HTML(t *testing.T) {
	t.Parallel()

	m, sent := newRecordingMailer(t, nil)
	svc := mailop.NewMailerService(m)

	err := svc.Send(context.Background(), mailop.Payload{
		To:      mailop.Recipients{"test@example.com"},
		Subject: "Test Subject",
		ReplyTo: "reply@example.com",
		Body:    mailop.HTMLBody("<p>HTML content</p>"),
	})
	require.NoError(t, err)

	require.Len(t, *sent, 1)
	email := (*sent)[0]
	assert.Equal(t, []string{"test@example.com"}, email.To)
	assert.Equal(t, "Test Subject", email.Subject)
	assert.Equal(t, "reply@example.com", email.ReplyTo)
	assert.Equal(t, "<p>HTML content</p>", email.HTML)
	assert.Equal(t, "HTML content", email.Text)
	assert.Equal(t, "mail", email.Tags["operation"])
}

func TestMailerService_Template(t *testing.T) {
	t.Parallel()

	m, sent := newRecordingMailer(t, nil)
	svc := mailop.NewMailerService(m)

	err := svc.Send(context.Background(), mailop.Payload{
		To:      mailop.Recipients{"test@example.com"},
		Subject: "Hello {{.name}}",
		Body: mailop.TemplateBody{
			Name: mailop.DefaultTemplate,
			Data: map[string]any{"name": "John", "title": "Welcome", "url": "https://example.com/start"},
		},
	})
	require.NoError(t, err)

	require.Len(t, *sent, 1)
	email := (*sent)[0]
	assert.Equal(t, "Hello {{.name}}", email.Subject)
	assert.Contains(t, email.HTML, "Welcome")
	assert.Contains(t, email.HTML, "https://example.com/start")
	assert.Contains(t, email.HTML, "<html")
}

func TestMailerService_TemplateSubjectVerbatim(t *testing.T) {
	t.Parallel()

	m, sent := newRecordingMailer(t, nil)
	svc := mailop.NewMailerService(m)

	payload := mailop.Assemble(mailop.Options{
		To:      mailop.Recipients{"test@example.com"},
		Subject: "Price {{",
		Type:    mailop.TypeTemplate,
		Data:    map[string]any{"title": "Offer"},
	})
	require.NoError(t, svc.Send(context.Background(), payload))

	require.Len(t, *sent, 1)
	assert.Equal(t, "Price {{", (*sent)[0].Subject)
}

func TestMailerService_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		m, sent := newRecordingMailer(t, nil)
		err := mailop.NewMailerService(m).Send(context.Background(), mailop.Payload{
			To:   mailop.Recipients{"test@example.com"},
			Body: mailop.TemplateBody{Name: "missing"},
		})

		require.ErrorIs(t, err, mailer.ErrTemplateNotFound)
		assert.Empty(t, *sent)
	})

	t.Run("empty html", func(t *testing.T) {
		t.Parallel()

		m, _ := newRecordingMailer(t, nil)
		err := mailop.NewMailerService(m).Send(context.Background(), mailop.Payload{
			To:      mailop.Recipients{"test@example.com"},
			Subject: "x",
			Body:    mailop.HTMLBody(""),
		})

		require.ErrorIs(t, err, mailer.ErrNoContent)
	})

	t.Run("provider failure", func(t *testing.T) {
		t.Parallel()

		providerErr := errors.New("provider down")
		m, _ := newRecordingMailer(t, providerErr)
		err := mailop.NewMailerService(m).Send(context.Background(), mailop.Payload{
			To:      mailop.Recipients{"test@example.com"},
			Subject: "x",
			Body:    mailop.HTMLBody("<p>x</p>"),
		})

		require.ErrorIs(t, err, mailer.ErrSendFailed)
		require.ErrorIs(t, err, providerErr)
	})

	t.Run("missing body", func(t *testing.T) {
		t.Parallel()

		m, _ := newRecordingMailer(t, nil)
		err := mailop.NewMailerService(m).Send(context.Background(), mailop.Payload{
			To: mailop.Recipients{"test@example.com"},
		})

		require.ErrorIs(t, err, mailop.ErrUnsupportedBody)
	})
}
