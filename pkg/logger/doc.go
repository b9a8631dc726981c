// Package logger builds structured slog loggers with context extraction
// and optional Sentry reporting.
//
// Context extractors add request-scoped attributes (request ID, invocation ID)
// to every record logged with a context:
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"},
//		httpapi.RequestIDExtractor(),
//		mailop.InvocationIDExtractor(),
//	)
//	log.ErrorContext(ctx, "send failed", slog.Any("error", err))
//
// When Config.Sentry.DSN is set, records are also forwarded to Sentry:
// errors create Issues, warnings and errors are stored as logs. Without a
// DSN, or if Sentry fails to initialize, logging continues locally.
// Register SentryFlush as a shutdown hook so buffered events are delivered.
package logger
