package sanitizer

import (
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	strictPolicy   *bluemonday.Policy
	markdownPolicy *bluemonday.Policy
	initOnce       sync.Once
)

// markdownElements is the allow-list for rendered markdown: document
// structure, headings, inline formatting and tables. Media, forms and
// embedded content are not allowed.
var markdownElements = []string{
	"address", "article", "aside", "footer", "header", "hgroup", "main", "nav", "section",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure", "hr", "li", "ol", "p", "pre", "ul",
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn", "em", "i", "kbd", "mark",
	"q", "rb", "rp", "rt", "rtc", "ruby", "s", "samp", "small", "span", "strong", "sub", "sup",
	"time", "u", "var", "wbr",
	"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",
}

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		markdownPolicy = bluemonday.NewPolicy()
		markdownPolicy.AllowElements(markdownElements...)
		markdownPolicy.AllowAttrs("href", "name", "target").OnElements("a")
		markdownPolicy.RequireParseableURLs(true)
		markdownPolicy.AllowRelativeURLs(true)
		markdownPolicy.AllowURLSchemes("http", "https", "ftp", "mailto", "tel")
	})
}

// StripHTML removes all markup and returns plain text with entities decoded.
// The result is meant for text/plain bodies, never for HTML output.
func StripHTML(s string) string {
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SanitizeMarkdownHTML sanitizes HTML produced by a markdown renderer.
// Structural and formatting tags survive; scripts, event handlers, styles,
// embedded content and non-standard URL schemes are removed.
func SanitizeMarkdownHTML(s string) string {
	initPolicies()
	return sanitize(markdownPolicy, s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return sanitize(policy, s)
}

func sanitize(policy *bluemonday.Policy, s string) string {
	return normalizeText(policy.Sanitize(s))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// normalizeText rewrites text nodes so only &, < and > stay escaped, undoing
// bluemonday's &#34; and &#39; in prose. Tags and attribute values are
// copied byte for byte.
func normalizeText(s string) string {
	if !strings.Contains(s, "&#") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return s
			}
			return b.String()
		case html.TextToken:
			_, _ = textEscaper.WriteString(&b, string(z.Text()))
		default:
			_, _ = b.Write(z.Raw())
		}
	}
}
