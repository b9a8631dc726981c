package mailop_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailop"
)

func TestCoerceBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     any
		expected string
	}{
		{name: "string passes through", body: "# Hello", expected: "# Hello"},
		{name: "empty string", body: "", expected: ""},
		{name: "nil becomes empty", body: nil, expected: ""},
		{name: "object", body: map[string]any{"key": "value"}, expected: `{"key":"value"}`},
		{name: "number", body: 42, expected: "42"},
		{name: "bool", body: true, expected: "true"},
		{name: "list", body: []any{"a", 1.5}, expected: `["a",1.5]`},
		{name: "markup is not escaped", body: map[string]string{"html": "<b>&</b>"}, expected: `{"html":"<b>&</b>"}`},
		{name: "raw JSON keeps key order", body: json.RawMessage(`{ "z": 1, "a": [1, 2] }`), expected: `{"z":1,"a":[1,2]}`},
		{name: "unserializable falls back to fmt", body: math.Inf(1), expected: "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, mailop.CoerceBody(tt.body))
		})
	}
}

func TestAssemble_Markdown(t *testing.T) {
	t.Parallel()

	p := mailop.Assemble(mailop.Options{
		Type:    mailop.TypeMarkdown,
		Body:    "# Test Email",
		To:      mailop.Recipients{"test@example.com"},
		Subject: "Test Subject",
		ReplyTo: "reply@example.com",
	})

	html, ok := p.Body.(mailop.HTMLBody)
	require.True(t, ok)
	assert.NotEmpty(t, html)
	assert.Contains(t, string(html), "<h1>Test Email</h1>")
	assert.Equal(t, "Test Subject", p.Subject)
	assert.Equal(t, "reply@example.com", p.ReplyTo)
	assert.Equal(t, mailop.Recipients{"test@example.com"}, p.To)
}

func TestAssemble_WYSIWYGIsVerbatim(t *testing.T) {
	t.Parallel()

	p := mailop.Assemble(mailop.Options{
		Type:    mailop.TypeWYSIWYG,
		Body:    "<p>HTML content</p>",
		To:      mailop.Recipients{"test@example.com"},
		Subject: "Test Subject",
	})

	assert.Equal(t, mailop.HTMLBody("<p>HTML content</p>"), p.Body)
	assert.Empty(t, p.ReplyTo)
}

func TestAssemble_WYSIWYGCoercesObjects(t *testing.T) {
	t.Parallel()

	p := mailop.Assemble(mailop.Options{
		Type: mailop.TypeWYSIWYG,
		Body: map[string]any{"key": "value"},
	})

	assert.Equal(t, mailop.HTMLBody(`{"key":"value"}`), p.Body)
}

func TestAssemble_Template(t *testing.T) {
	t.Parallel()

	p := mailop.Assemble(mailop.Options{
		Type:     mailop.TypeTemplate,
		Template: "custom-template",
		Data:     map[string]any{"name": "John"},
		Body:     "ignored",
		To:       mailop.Recipients{"test@example.com"},
		Subject:  "Test Subject",
	})

	tpl, ok := p.Body.(mailop.TemplateBody)
	require.True(t, ok)
	assert.Equal(t, "custom-template", tpl.Name)
	assert.Equal(t, map[string]any{"name": "John"}, tpl.Data)
}

func TestAssemble_TemplateDefaults(t *testing.T) {
	t.Parallel()

	p := mailop.Assemble(mailop.Options{Type: mailop.TypeTemplate})

	assert.Equal(t, mailop.TemplateBody{Name: "base", Data: map[string]any{}}, p.Body)
}

func TestAssemble_ObjectBodyAppearsLiterally(t *testing.T) {
	t.Parallel()

	p := mailop.Assemble(mailop.Options{
		Type: mailop.TypeMarkdown,
		Body: map[string]any{"key": "value"},
	})

	html, ok := p.Body.(mailop.HTMLBody)
	require.True(t, ok)
	assert.Contains(t, string(html), `{"key":"value"}`)
}

func TestAssemble_UnknownTypeIsMarkdown(t *testing.T) {
	t.Parallel()

	for _, typ := range []mailop.Type{"", "plain"} {
		p := mailop.Assemble(mailop.Options{Type: typ, Body: "**bold**"})
		assert.Equal(t, mailop.HTMLBody("<p><strong>bold</strong></p>\n"), p.Body, "type %q", typ)
	}
}

func TestAssemble_ExactlyOneBody(t *testing.T) {
	t.Parallel()

	for _, typ := range append([]mailop.Type{""}, mailop.Types...) {
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			p := mailop.Assemble(mailop.Options{Type: typ, Body: "hello", To: mailop.Recipients{"a@example.com"}})

			raw, err := json.Marshal(p)
			require.NoError(t, err)

			var wire map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(raw, &wire))

			_, hasHTML := wire["html"]
			_, hasTemplate := wire["template"]
			assert.True(t, hasHTML != hasTemplate, "payload %s", raw)
		})
	}
}

func TestPayload_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(mailop.Payload{
			To:      mailop.Recipients{"a@example.com", "b@example.com"},
			Subject: "Hi",
			ReplyTo: "r@example.com",
			Body:    mailop.HTMLBody("<p>x</p>"),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"to":["a@example.com","b@example.com"],"subject":"Hi","replyTo":"r@example.com","html":"<p>x</p>"}`, string(raw))
	})

	t.Run("empty html is kept", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(mailop.Payload{Body: mailop.HTMLBody("")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"to":null,"subject":"","html":""}`, string(raw))
	})

	t.Run("template", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(mailop.Payload{
			To:      mailop.Recipients{"a@example.com"},
			Subject: "Hi",
			Body:    mailop.TemplateBody{Name: "base"},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"to":["a@example.com"],"subject":"Hi","template":{"name":"base","data":{}}}`, string(raw))
	})

	t.Run("missing body", func(t *testing.T) {
		t.Parallel()

		_, err := json.Marshal(mailop.Payload{})
		require.ErrorIs(t, err, mailop.ErrInvalidBody)
	})
}
