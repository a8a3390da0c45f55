package order

import "time"

// Status tracks the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Order represents a customer order.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Items     []string  `json:"items"`
	Total     float64   `json:"total"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateParams carries the caller-supplied fields for a new order.
// ID, Status, and timestamps are assigned by the store.
type CreateParams struct {
	UserID string   `json:"userId"`
	Items  []string `json:"items"`
	Total  float64  `json:"total"`
}

// UpdateParams carries a partial update. Nil fields are left unchanged.
type UpdateParams struct {
	Items  []string `json:"items,omitempty"`
	Total  *float64 `json:"total,omitempty"`
	Status *Status  `json:"status,omitempty"`
}
