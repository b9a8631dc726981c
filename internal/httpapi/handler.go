// Package httpapi exposes the mail operation to a flow host over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/mailop"
	"github.com/dmitrymomot/mailop/middlewares"
	"github.com/dmitrymomot/mailop/pkg/health"
	"github.com/dmitrymomot/mailop/pkg/logger"
)

// API serves the operation's metadata, preview and run endpoints.
type API struct {
	op          *mailop.Operation
	logger      *slog.Logger
	checks      health.Checks
	corsOrigins []string
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithReadinessChecks sets the checks behind /health/ready.
func WithReadinessChecks(checks health.Checks) Option {
	return func(a *API) {
		a.checks = checks
	}
}

// WithCORS enables CORS for the given origins.
func WithCORS(origins ...string) Option {
	return func(a *API) {
		a.corsOrigins = origins
	}
}

// New creates an API for op.
func New(op *mailop.Operation, opts ...Option) *API {
	a := &API{
		op:     op,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router builds the HTTP handler.
//
//	GET  /operations
//	GET  /operations/{id}
//	POST /operations/{id}/fields
//	POST /operations/{id}/overview
//	POST /operations/{id}/preview
//	POST /operations/{id}/run
//	GET  /health/live
//	GET  /health/ready
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(a.logger))
	r.Use(middlewares.Recover(a.logger, middlewares.WithRecoverHandler(
		func(w http.ResponseWriter, r *http.Request, pe *middlewares.PanicError) {
			writeError(w, r, a.logger, ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(pe)))
		},
	)))
	if len(a.corsOrigins) > 0 {
		r.Use(middlewares.CORS(
			middlewares.WithAllowOrigins(a.corsOrigins...),
			middlewares.WithExposeHeaders("X-Request-ID"),
		))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, a.logger, ErrNotFound("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, a.logger, ErrMethodNotAllowed("method not allowed"))
	})

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(a.checks, health.WithLogger(a.logger)))

	r.Route("/operations", func(r chi.Router) {
		r.Get("/", a.listOperations)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(a.requireOperation)
			r.Get("/", a.getOperation)
			r.Post("/fields", a.fields)
			r.Post("/overview", a.overview)
			r.Post("/preview", a.preview)
			r.Post("/run", a.run)
		})
	})

	return r
}

func (a *API) requireOperation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != mailop.ID {
			writeError(w, r, a.logger, ErrNotFound("operation not found", WithErrorCode("unknown_operation")))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) listOperations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []mailop.Definition{mailop.Meta})
}

func (a *API) getOperation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, mailop.Meta)
}

func (a *API) fields(w http.ResponseWriter, r *http.Request) {
	var panel mailop.Panel
	if err := decodeJSON(w, r, &panel); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mailop.Fields(panel))
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	var opts mailop.Options
	if err := decodeJSON(w, r, &opts); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, mailop.Overview(opts))
}

func (a *API) preview(w http.ResponseWriter, r *http.Request) {
	var opts mailop.Options
	if err := decodeJSON(w, r, &opts); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, a.op.Assemble(opts))
}

type runResponse struct {
	InvocationID string `json:"invocation_id"`
}

func (a *API) run(w http.ResponseWriter, r *http.Request) {
	var opts mailop.Options
	if err := decodeJSON(w, r, &opts); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	id := a.op.Handle(r.Context(), opts)
	writeJSON(w, http.StatusAccepted, runResponse{InvocationID: id})
}
