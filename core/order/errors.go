package order

import "errors"

var (
	// ErrOrderNotFound is returned when no order exists with the requested id.
	// The message text travels verbatim in reply errorMessage fields, so it is
	// part of the wire contract.
	ErrOrderNotFound = errors.New("Order not found")

	// ErrInvalidParams is returned when create parameters fail validation.
	ErrInvalidParams = errors.New("invalid order parameters")
)
