package command

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler executes commands of a single type.
type Handler interface {
	// Type returns the command type this handler processes.
	Type() Type

	// Handle decodes the payload and executes the command, returning the
	// success result or an application error.
	Handle(ctx context.Context, payload json.RawMessage) (any, error)
}

// HandlerFunc is a type-safe handler for commands whose payload decodes
// into T. It removes manual json.RawMessage handling from handler bodies.
type HandlerFunc[T any] struct {
	cmdType Type
	fn      func(context.Context, T) (any, error)
}

// NewHandlerFunc creates a typed handler for the given command type.
//
// Example:
//
//	handler := command.NewHandlerFunc(command.TypeOrderGet,
//		func(ctx context.Context, cmd command.GetOrder) (any, error) {
//			return store.Get(ctx, cmd.ID)
//		})
func NewHandlerFunc[T any](cmdType Type, fn func(context.Context, T) (any, error)) Handler {
	return &HandlerFunc[T]{cmdType: cmdType, fn: fn}
}

// Type returns the command type this handler processes.
func (h *HandlerFunc[T]) Type() Type {
	return h.cmdType
}

// Handle decodes the raw payload into T and invokes the wrapped function.
// A payload that does not decode is an application failure of this command,
// not a poison message.
func (h *HandlerFunc[T]) Handle(ctx context.Context, payload json.RawMessage) (any, error) {
	var cmd T
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &cmd); err != nil {
			return nil, fmt.Errorf("invalid %s payload: %w", h.cmdType, err)
		}
	}
	return h.fn(ctx, cmd)
}
