package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		metadata map[string]any
		body     string
	}{
		{
			name:     "with frontmatter",
			content:  "---\nSubject: Welcome Email\nAuthor: System\n---\n# Hello World\n\nThis is the email body.\n",
			metadata: map[string]any{"Subject": "Welcome Email", "Author": "System"},
			body:     "# Hello World\n\nThis is the email body.\n",
		},
		{
			name:     "without frontmatter",
			content:  "# Hello World\n\nThis is just plain markdown.",
			metadata: map[string]any{},
			body:     "# Hello World\n\nThis is just plain markdown.",
		},
		{
			name:     "empty frontmatter",
			content:  "---\n---\nBody content here.",
			metadata: map[string]any{},
			body:     "Body content here.",
		},
		{
			name:     "windows line endings",
			content:  "---\r\nSubject: Hi\r\n---\r\nBody",
			metadata: map[string]any{"Subject": "Hi"},
			body:     "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.metadata, tmpl.Metadata)
			require.Equal(t, tt.body, tmpl.Body)
		})
	}
}

func TestParseTemplate_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"only opening delimiter": "---\n",
		"no closing delimiter":   "---\nSubject: Hi\nBody",
		"broken yaml":            "---\nSubject: [unclosed\n---\nBody",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTemplate([]byte(content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
		})
	}
}
