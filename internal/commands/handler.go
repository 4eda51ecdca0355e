package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

const defaultHandlerTimeout = 30 * time.Second

// Status is the outcome category reported to telemetry callbacks.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusFailed       Status = "failed"
	StatusContextError Status = "context_error"
)

// Execution describes one finished command run.
type Execution struct {
	Command   string
	Operation string
	Duration  time.Duration
	Status    Status
	Err       error
}

// Telemetry is invoked after every execution that passed validation.
type Telemetry func(ctx context.Context, exec Execution)

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler wraps command execution with validation, context deadlines,
// structured logging and error categorisation.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
	telemetry Telemetry
	now       func() time.Time
}

var _ command.Commander[command.Message] = (*Handler[command.Message])(nil)

// NewHandler creates a handler that satisfies go-command's Commander interface.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute validates msg, applies the timeout and runs the wrapped function.
// Errors come back categorised: validation, context, or execution.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	messageType := command.GetMessageType(msg)
	fields := logging.ContextFields(ctx)
	if fields == nil {
		fields = make(map[string]any, 2)
	}
	fields["command"] = messageType
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	logger := logging.WithFields(h.logger, fields)

	if err := ctx.Err(); err != nil {
		wrapped := wrapContextError(err)
		h.report(ctx, messageType, 0, StatusContextError, wrapped)
		return wrapped
	}

	started := h.now()
	logger.Debug("command.execute.start")

	if err := h.exec(ctx, msg); err != nil {
		elapsed := h.now().Sub(started)
		logger.Error("command.execute.failed", "error", err, "duration_ms", elapsed.Milliseconds())
		wrapped := wrapExecuteError(err)
		h.report(ctx, messageType, elapsed, StatusFailed, wrapped)
		return wrapped
	}

	elapsed := h.now().Sub(started)
	if err := ctx.Err(); err != nil {
		logger.Error("command.execute.context_error", "error", err, "duration_ms", elapsed.Milliseconds())
		wrapped := wrapContextError(err)
		h.report(ctx, messageType, elapsed, StatusContextError, wrapped)
		return wrapped
	}

	logger.Info("command.execute.success", "duration_ms", elapsed.Milliseconds())
	h.report(ctx, messageType, elapsed, StatusSuccess, nil)
	return nil
}

// WithTimeout overrides the default execution timeout. Zero disables it.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.logger = logging.Ensure(logger)
	}
}

// WithOperation sets the operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithTelemetry registers a callback invoked after each execution.
func WithTelemetry[T command.Message](fn Telemetry) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.telemetry = fn
	}
}

func (h *Handler[T]) report(ctx context.Context, messageType string, elapsed time.Duration, status Status, err error) {
	if h.telemetry == nil {
		return
	}
	h.telemetry(ctx, Execution{
		Command:   messageType,
		Operation: h.operation,
		Duration:  elapsed,
		Status:    status,
		Err:       err,
	})
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
