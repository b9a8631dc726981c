// Command mailop serves the mail operation over HTTP.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/mailop"
	"github.com/dmitrymomot/mailop/internal/config"
	"github.com/dmitrymomot/mailop/internal/httpapi"
	"github.com/dmitrymomot/mailop/internal/server"
	"github.com/dmitrymomot/mailop/middlewares"
	"github.com/dmitrymomot/mailop/pkg/health"
	"github.com/dmitrymomot/mailop/pkg/logger"
	"github.com/dmitrymomot/mailop/pkg/mailer"
	"github.com/dmitrymomot/mailop/pkg/mailer/resend"
	"github.com/dmitrymomot/mailop/pkg/mailer/smtp"
	"github.com/dmitrymomot/mailop/templates"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log,
		middlewares.RequestIDExtractor(),
		mailop.InvocationIDExtractor(),
	).With(slog.String("service", "mailop"))

	var templateFS fs.FS = templates.FS
	if cfg.Mailer.TemplatesDir != "" {
		templateFS = os.DirFS(cfg.Mailer.TemplatesDir)
	}
	renderer := mailer.NewRenderer(templateFS)

	checks := health.Checks{
		"templates": func(context.Context) error {
			return renderer.Validate(cfg.Mailer.DefaultLayout, mailop.DefaultTemplate)
		},
	}

	var sender mailer.Sender
	switch cfg.Transport {
	case config.TransportResend:
		sender = resend.New(cfg.Resend)
	default:
		smtpSender := smtp.New(cfg.SMTP)
		checks["smtp"] = smtpSender.Ping
		sender = smtpSender
	}

	op := mailop.New(
		mailop.NewMailerService(mailer.New(sender, renderer, cfg.Mailer)),
		mailop.WithLogger(log),
	)

	api := httpapi.New(op,
		httpapi.WithLogger(log),
		httpapi.WithReadinessChecks(checks),
		httpapi.WithCORS(cfg.CORSOrigins...),
	)

	log.Info("mail operation ready",
		slog.String("operation", mailop.ID),
		slog.String("transport", cfg.Transport),
	)

	return server.Run(ctx, server.Config{
		Handler:         api.Router(),
		Logger:          log,
		Address:         cfg.HTTPAddr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Hooks: []server.Hook{
			op.Shutdown(),
			logger.SentryFlush(sentryFlushTimeout),
		},
	})
}
