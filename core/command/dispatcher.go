package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// UnknownPolicy controls what Dispatch does with an envelope type that has
// no registered handler.
type UnknownPolicy int

const (
	// PolicyDrop logs the envelope and returns ErrUnknownCommand so the
	// caller consumes the message without sending a reply.
	PolicyDrop UnknownPolicy = iota

	// PolicyReply returns a failed outcome naming the unsupported type, so
	// the caller replies to the originator instead of dropping silently.
	PolicyReply
)

// Dispatcher routes decoded envelopes to their handlers and normalizes
// every handler result, error, or panic into an Outcome. It never lets a
// handler failure escape to the polling loop.
type Dispatcher struct {
	handlers map[Type]Handler
	policy   UnknownPolicy
	logger   *slog.Logger
	mu       sync.RWMutex
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithUnknownPolicy sets the unknown-command policy. Defaults to PolicyDrop.
func WithUnknownPolicy(policy UnknownPolicy) Option {
	return func(d *Dispatcher) {
		d.policy = policy
	}
}

// NewDispatcher creates a dispatcher with no handlers registered.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[Type]Handler),
		policy:   PolicyDrop,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Register adds a handler for its command type.
func (d *Dispatcher) Register(handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[handler.Type()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, handler.Type())
	}

	d.handlers[handler.Type()] = handler
	return nil
}

// RegisterAll adds multiple handlers, stopping at the first error.
func (d *Dispatcher) RegisterAll(handlers ...Handler) error {
	for _, h := range handlers {
		if err := d.Register(h); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch routes the envelope to its handler and returns the normalized
// outcome. The returned error is non-nil only for an unknown command type
// under PolicyDrop; application failures are carried inside the Outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, env Envelope) (Outcome, error) {
	d.mu.RLock()
	handler, ok := d.handlers[env.Type]
	d.mu.RUnlock()

	if !ok {
		d.logger.WarnContext(ctx, "no handler for command type",
			slog.String("type", string(env.Type)),
			slog.String("correlation_id", env.CorrelationID))

		if d.policy == PolicyReply {
			return Outcome{
				Success:      false,
				ErrorMessage: fmt.Sprintf("unsupported command type: %s", env.Type),
			}, nil
		}
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownCommand, env.Type)
	}

	return d.execute(ctx, handler, env), nil
}

// execute runs a handler with panic containment. A panicking handler must
// not abort the polling loop; it becomes a failed outcome like any other
// application error.
func (d *Dispatcher) execute(ctx context.Context, handler Handler, env Envelope) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "handler panicked",
				slog.String("type", string(env.Type)),
				slog.String("correlation_id", env.CorrelationID),
				slog.Any("panic", r))
			out = Outcome{Success: false, ErrorMessage: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	result, err := handler.Handle(ctx, env.Data)
	if err != nil {
		d.logger.ErrorContext(ctx, "command failed",
			slog.String("type", string(env.Type)),
			slog.String("correlation_id", env.CorrelationID),
			slog.String("error", err.Error()))
		return Fail(err)
	}

	return Ok(result)
}

// Types returns the registered command types. Useful for startup logging.
func (d *Dispatcher) Types() []Type {
	d.mu.RLock()
	defer d.mu.RUnlock()

	types := make([]Type, 0, len(d.handlers))
	for t := range d.handlers {
		types = append(types, t)
	}
	return types
}
