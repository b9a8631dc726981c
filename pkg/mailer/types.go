package mailer

import (
	"fmt"
	"strings"
)

// Tags are provider-side labels attached to a message.
// Values may be strings or struct{}{} for presence-only tags;
// each provider adapter converts them to its own representation.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully-prepared message handed to a Sender.
type Email struct {
	Tags    Tags     // Provider-specific tags
	Subject string   // Email subject
	HTML    string   // HTML body content
	Text    string   // Plain text alternative
	From    string   // Overrides the provider's default sender
	ReplyTo string   // Reply-to address
	To      []string // Recipients (at least one required)
}

// recipients splits comma-separated entries and drops blanks and surrounding whitespace.
func recipients(to []string) []string {
	out := make([]string, 0, len(to))
	for _, entry := range to {
		for addr := range strings.SplitSeq(entry, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}
