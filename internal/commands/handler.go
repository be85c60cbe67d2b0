package commands

import (
	"context"
	"time"

	"github.com/eventfabrik/go-cms-nav/internal/logging"
	"github.com/eventfabrik/go-cms-nav/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// defaultTimeout bounds a single command execution.
const defaultTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler runs one command type through the shared execution pipeline:
// message validation, deadline enforcement, structured logging, and error
// tagging. It satisfies go-command's Commander interface.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
}

// NewHandler wraps fn in the shared pipeline. The operation and component
// fields are attached to the logger once, here; per-execution entries only
// add the message type.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = logging.WithFields(h.logger, handlerFields(h.operation))
	return h
}

// Execute conforms to command.Commander[T].Execute.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return tagValidation(err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return tagContext(err)
	}

	msgType := command.GetMessageType(msg)
	h.logger.Debug("command.accepted", "command", msgType)

	if err := h.exec(ctx, msg); err != nil {
		h.logger.Error("command.failed", "command", msgType, "error", err)
		return tagExecution(err)
	}
	if err := ctx.Err(); err != nil {
		h.logger.Error("command.interrupted", "command", msgType, "error", err)
		return tagContext(err)
	}

	h.logger.Info("command.completed", "command", msgType)
	return nil
}

// WithTimeout overrides the default execution deadline. Non-positive values
// disable the deadline entirely.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to no-op.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation names the operation emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

func handlerFields(operation string) map[string]any {
	fields := map[string]any{"component": "command"}
	if operation != "" {
		fields["operation"] = operation
	}
	return fields
}
