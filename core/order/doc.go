// Package order defines the order entity, the Store persistence interface
// consumed by the command handlers, and a map-backed in-memory implementation.
//
// The Store contract is intentionally small: CRUD plus two list helpers.
// Implementations signal missing entities with ErrOrderNotFound so callers
// can branch with errors.Is regardless of the backing database.
//
// Basic usage:
//
//	store := order.NewMemoryStore()
//
//	o, err := store.Create(ctx, order.CreateParams{
//		UserID: "u1",
//		Items:  []string{"sku-1", "sku-2"},
//		Total:  42.50,
//	})
//	if err != nil {
//		return err
//	}
//
//	got, err := store.Get(ctx, o.ID)
//	if errors.Is(err, order.ErrOrderNotFound) {
//		// handle missing order
//	}
//
// Partial updates use pointer fields; nil means "leave unchanged":
//
//	status := order.StatusPaid
//	updated, err := store.Update(ctx, o.ID, order.UpdateParams{Status: &status})
//
// For a Redis-backed implementation see integration/database/redis.
package order
