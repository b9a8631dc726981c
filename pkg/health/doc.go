// Package health serves liveness and readiness probes.
//
// Readiness runs named checks concurrently under a shared timeout and
// reports each result:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"templates": func(context.Context) error { return renderer.Validate("base.html", "base") },
//		"smtp":      smtpSender.Ping,
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with an Accept header or ?format=json.
package health
