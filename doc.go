// Package mailop is a mail operation for workflow automation hosts: it turns
// the options a user configured on a flow step into an email payload and
// hands it to the host's mail service without waiting for delivery.
//
// # Body types
//
// The Type option selects how the message content is produced:
//
//   - markdown (default): Body is rendered to HTML and sanitized
//   - wysiwyg: Body is already HTML and is sent verbatim
//   - template: the host renders the named Template with Data
//
// A Body that is not a string (for example an object resolved from a
// previous flow step) is serialized to JSON first, so a value like
// {"key":"value"} appears literally in the message.
//
// # Usage
//
//	op := mailop.New(
//		mailop.NewMailerService(m),
//		mailop.WithLogger(log),
//	)
//
//	op.Handle(ctx, mailop.Options{
//		To:      mailop.Recipients{"user@example.com"},
//		Subject: "Weekly report",
//		ReplyTo: "support@example.com",
//		Body:    "# Hello\n\nYour report is ready.",
//	})
//
// Handle returns as soon as the send has been started. Failures are logged
// with the message "Could not send mail in \"mail\" operation" and are never
// returned or retried. Use Shutdown to wait for in-flight sends before the
// process exits.
//
// # Presentation
//
// Meta, Overview and Fields describe the operation to the host's flow
// editor: its identity, the summary shown on a configured step and the
// settings panel.
package mailop
