package mailop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailop/pkg/logger"
)

// SendFailedMessage is logged when the mail service rejects a payload.
const SendFailedMessage = `Could not send mail in "mail" operation`

// MailService delivers assembled payloads.
type MailService interface {
	Send(ctx context.Context, payload Payload) error
}

// MailServiceFunc adapts a function to MailService.
type MailServiceFunc func(ctx context.Context, payload Payload) error

// Send implements MailService.
func (f MailServiceFunc) Send(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

// Operation dispatches mail payloads to a MailService without waiting for
// the outcome.
type Operation struct {
	service  MailService
	logger   *slog.Logger
	render   func(string) string
	inflight sync.WaitGroup
}

// Option configures an Operation.
type Option func(*Operation)

// WithLogger sets the logger used for send failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *Operation) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRenderer replaces the markdown renderer. See MarkdownRenderer.
func WithRenderer(render func(string) string) Option {
	return func(o *Operation) {
		if render != nil {
			o.render = render
		}
	}
}

// New creates an Operation sending through service.
func New(service MailService, opts ...Option) *Operation {
	o := &Operation{
		service: service,
		logger:  logger.NewNope(),
		render:  RenderSafeHTML,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Assemble builds the payload for opts with the operation's renderer.
func (o *Operation) Assemble(opts Options) Payload {
	return AssembleWith(opts, o.render)
}

// Handle assembles the payload for opts and starts sending it in the
// background. It returns the invocation ID attached to the send's log
// records. The send outlives ctx cancellation; its failure is logged and
// never reported to the caller.
func (o *Operation) Handle(ctx context.Context, opts Options) string {
	payload := o.Assemble(opts)

	id := uuid.NewString()
	ctx = context.WithoutCancel(WithInvocationID(ctx, id))

	o.logger.DebugContext(ctx, "mail operation dispatched",
		slog.String("type", string(opts.Type.OrDefault())),
		slog.Int("recipients", len(payload.To)),
	)

	o.inflight.Add(1)
	go func() {
		defer o.inflight.Done()
		o.send(ctx, payload)
	}()

	return id
}

func (o *Operation) send(ctx context.Context, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.ErrorContext(ctx, SendFailedMessage, slog.Any("error", fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := o.service.Send(ctx, payload); err != nil {
		o.logger.ErrorContext(ctx, SendFailedMessage, slog.Any("error", err))
	}
}

// Wait blocks until every send started by Handle has finished.
func (o *Operation) Wait() {
	o.inflight.Wait()
}

// Shutdown returns a hook that waits for in-flight sends, giving up when
// the hook's context is done.
func (o *Operation) Shutdown() func(context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			o.inflight.Wait()
			close(done)
		}()

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrShutdownTimeout, ctx.Err())
		}
	}
}

type invocationIDKey struct{}

// WithInvocationID stores an invocation ID in ctx.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// InvocationID returns the invocation ID stored in ctx, or "".
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationIDKey{}).(string)
	return id
}

// InvocationIDExtractor adds the invocation_id attribute to log records
// emitted during a send.
func InvocationIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := InvocationID(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("invocation_id", id), true
	}
}
