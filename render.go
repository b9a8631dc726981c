package mailop

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/mailop/pkg/sanitizer"
)

// Raw HTML in the source is passed through by goldmark and left to the
// sanitizer, so inline markup the policy allows survives.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// RenderSafeHTML converts markdown to HTML and sanitizes the result with the
// markdown allow-list. Empty input yields an empty string.
func RenderSafeHTML(md string) string {
	return renderMarkdown(md, sanitizer.SanitizeMarkdownHTML)
}

// MarkdownRenderer returns a renderer for WithRenderer that sanitizes with
// policy instead of the default allow-list. A nil policy selects the default.
func MarkdownRenderer(policy *bluemonday.Policy) func(string) string {
	if policy == nil {
		return RenderSafeHTML
	}
	return func(md string) string {
		return renderMarkdown(md, func(s string) string {
			return sanitizer.SanitizeHTMLCustom(s, policy)
		})
	}
}

func renderMarkdown(md string, sanitize func(string) string) string {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "<p>" + html.EscapeString(md) + "</p>"
	}
	return sanitize(buf.String())
}
