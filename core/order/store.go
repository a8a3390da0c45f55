package order

import "context"

// Store defines the persistence operations required by the command handlers.
// Implementations must return ErrOrderNotFound for Get/Update/Delete on
// unknown ids so callers can rely on errors.Is checks.
type Store interface {
	// Create persists a new order and returns it with generated id,
	// pending status, and timestamps.
	Create(ctx context.Context, params CreateParams) (Order, error)

	// Get returns the order with the given id.
	Get(ctx context.Context, id string) (Order, error)

	// Update applies a partial update and returns the updated order.
	Update(ctx context.Context, id string, params UpdateParams) (Order, error)

	// Delete removes the order with the given id.
	Delete(ctx context.Context, id string) error

	// ListByUser returns all orders belonging to a user.
	ListByUser(ctx context.Context, userID string) ([]Order, error)

	// List returns all stored orders.
	List(ctx context.Context) ([]Order, error)
}
