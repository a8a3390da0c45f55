package command

import (
	"context"

	"github.com/dmitrymomot/orderflow/core/order"
)

// DeleteResult is the success payload of TypeOrderDelete.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// OrderHandlers builds the handlers for the four order command types,
// each backed by the given store.
func OrderHandlers(store order.Store) ([]Handler, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	return []Handler{
		NewHandlerFunc(TypeOrderCreate, func(ctx context.Context, cmd CreateOrder) (any, error) {
			return store.Create(ctx, order.CreateParams{
				UserID: cmd.UserID,
				Items:  cmd.Items,
				Total:  cmd.Total,
			})
		}),

		NewHandlerFunc(TypeOrderGet, func(ctx context.Context, cmd GetOrder) (any, error) {
			return store.Get(ctx, cmd.ID)
		}),

		NewHandlerFunc(TypeOrderUpdate, func(ctx context.Context, cmd UpdateOrder) (any, error) {
			params := order.UpdateParams{
				Items: cmd.Items,
				Total: cmd.Total,
			}
			if cmd.Status != nil {
				status := order.Status(*cmd.Status)
				params.Status = &status
			}
			return store.Update(ctx, cmd.ID, params)
		}),

		NewHandlerFunc(TypeOrderDelete, func(ctx context.Context, cmd DeleteOrder) (any, error) {
			if err := store.Delete(ctx, cmd.ID); err != nil {
				return nil, err
			}
			return DeleteResult{Deleted: true}, nil
		}),
	}, nil
}
