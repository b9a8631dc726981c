package resend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailop/pkg/mailer"
)

func TestSender_Request(t *testing.T) {
	t.Parallel()

	s := New(Config{APIKey: "re_test", SenderEmail: "team@example.com", SenderName: "Team"})

	req := s.request(&mailer.Email{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
		ReplyTo: "reply@example.com",
		Tags:    mailer.Tags{"operation": "mail", "transactional": struct{}{}},
	})

	assert.Equal(t, "Team <team@example.com>", req.From)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, req.To)
	assert.Equal(t, "Hello", req.Subject)
	assert.Equal(t, "<p>Hi</p>", req.Html)
	assert.Equal(t, "Hi", req.Text)
	assert.Equal(t, "reply@example.com", req.ReplyTo)

	require.Len(t, req.Tags, 2)
	assert.Equal(t, "operation", req.Tags[0].Name)
	assert.Equal(t, "mail", req.Tags[0].Value)
	assert.Equal(t, "transactional", req.Tags[1].Name)
	assert.Equal(t, "true", req.Tags[1].Value)
}

func TestSender_Request_FromOverride(t *testing.T) {
	t.Parallel()

	s := New(Config{SenderEmail: "team@example.com"})

	assert.Equal(t, "team@example.com", s.request(&mailer.Email{}).From)
	assert.Equal(t, "other@example.com", s.request(&mailer.Email{From: "other@example.com"}).From)
	assert.Nil(t, s.request(&mailer.Email{}).Tags)
}

func TestTagValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "true", tagValue(nil))
	assert.Equal(t, "true", tagValue(struct{}{}))
	assert.Equal(t, "x", tagValue("x"))
	assert.Equal(t, "false", tagValue(false))
	assert.Equal(t, "42", tagValue(42))
	assert.Equal(t, "1.5", tagValue(1.5))
}
