// Package mailer is the mail service behind the mail operation: it renders
// named markdown templates and hands finished messages to a provider.
//
// # Architecture
//
//   - Sender: interface implemented by providers (see the resend and smtp subpackages)
//   - Renderer: markdown templates with YAML frontmatter, wrapped into HTML layouts
//   - Mailer: combines Sender and Renderer
//
// # Usage
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "team@example.com",
//		SenderName:  "Team",
//	})
//
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       []string{"user@example.com"},
//		Template: "base",
//		Data:     map[string]any{"url": "https://example.com"},
//	})
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter. A template
// name without an extension resolves to "<name>.md":
//
//	---
//	Subject: Welcome {{.name}}!
//	---
//
//	# Welcome
//
//	Hello {{.name}}, welcome to our service!
//
//	[!button|Get Started]({{.url}})
//
// Frontmatter and fallback subjects are executed as text templates over
// the same data. SendParams.Subject is sent as is.
// Layouts are html/template files receiving .Content, .Metadata and .Data.
//
// # Raw messages
//
// SendRaw sends an already rendered Email. When Text is empty it is derived
// from the HTML by stripping all markup.
package mailer
