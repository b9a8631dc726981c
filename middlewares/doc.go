// Package middlewares provides net/http middleware for the mail operation API.
//
// # Request ID
//
// RequestID assigns each request an ID, reusing X-Request-ID or
// X-Correlation-ID from upstream, and echoes it in the response. Build the
// logger with RequestIDExtractor so every record carries request_id:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	r.Use(middlewares.RequestID())
//
// # Recover
//
// Recover logs panics with a stack trace and writes a 500 response. Pass
// WithRecoverHandler to render the error body.
//
// # Request logging
//
// RequestLogger logs method, path, status, size and duration per request.
//
// # CORS
//
// CORS answers preflight requests and sets Access-Control headers for
// allowed origins.
package middlewares
