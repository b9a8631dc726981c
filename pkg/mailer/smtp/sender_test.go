package smtp

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailop/pkg/mailer"
)

func render(t *testing.T, s *Sender, email *mailer.Email) string {
	t.Helper()

	msg, err := s.message(email)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSender_Message(t *testing.T) {
	t.Parallel()

	s := New(Config{SenderEmail: "team@example.com", SenderName: "Team"})

	raw := render(t, s, &mailer.Email{
		To:      []string{"user@example.com"},
		Subject: "Hello\r\nBcc: evil@example.com",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
		ReplyTo: "reply@example.com",
	})

	assert.Contains(t, raw, "team@example.com")
	assert.Contains(t, raw, "user@example.com")
	assert.Contains(t, raw, "Reply-To:")
	assert.Contains(t, raw, "reply@example.com")
	assert.Contains(t, raw, "Subject: HelloBcc: evil@example.com")
	assert.NotContains(t, raw, "\r\nBcc: evil@example.com")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
}

func TestSender_Message_HTMLOnly(t *testing.T) {
	t.Parallel()

	s := New(Config{SenderEmail: "team@example.com"})

	raw := render(t, s, &mailer.Email{
		To:      []string{"user@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	})

	assert.Contains(t, raw, "text/html")
	assert.NotContains(t, raw, "text/plain")
	assert.NotContains(t, raw, "Reply-To:")
}

func TestSender_Message_NoSender(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}).message(&mailer.Email{To: []string{"user@example.com"}})
	require.ErrorIs(t, err, ErrNoSender)
}

func TestSender_Message_InvalidAddress(t *testing.T) {
	t.Parallel()

	_, err := New(Config{SenderEmail: "team@example.com"}).message(&mailer.Email{
		To: []string{"not an address"},
	})
	require.Error(t, err)
}

func TestSender_Ping_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(Config{Host: "127.0.0.1", Port: 1}).Ping(ctx)
	require.Error(t, err)
}
