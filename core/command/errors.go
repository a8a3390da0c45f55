package command

import "errors"

var (
	// ErrMalformedMessage is returned when a message body cannot be decoded
	// into a command envelope.
	ErrMalformedMessage = errors.New("malformed command message")

	// ErrUnknownCommand is returned by Dispatch when no handler is registered
	// for the envelope type and the dispatcher uses PolicyDrop.
	ErrUnknownCommand = errors.New("unknown command type")

	// ErrDuplicateHandler is returned when registering a second handler for
	// the same command type.
	ErrDuplicateHandler = errors.New("handler already registered for command type")

	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrStoreNil is returned when constructing order handlers without a store.
	ErrStoreNil = errors.New("order store cannot be nil")
)
