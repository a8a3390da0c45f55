package order

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is a map-backed Store implementation for testing and local
// development. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]Order
	now    func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock sets the time source. Used in tests for deterministic timestamps.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		orders: make(map[string]Order),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(ms)
	}

	return ms
}

func (ms *MemoryStore) Create(ctx context.Context, params CreateParams) (Order, error) {
	if params.UserID == "" {
		return Order{}, ErrInvalidParams
	}

	now := ms.now().UTC()
	o := Order{
		ID:        uuid.New().String(),
		UserID:    params.UserID,
		Items:     slices.Clone(params.Items),
		Total:     params.Total,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ms.mu.Lock()
	ms.orders[o.ID] = o
	ms.mu.Unlock()

	return o, nil
}

func (ms *MemoryStore) Get(ctx context.Context, id string) (Order, error) {
	ms.mu.RLock()
	o, ok := ms.orders[id]
	ms.mu.RUnlock()

	if !ok {
		return Order{}, ErrOrderNotFound
	}

	o.Items = slices.Clone(o.Items)
	return o, nil
}

func (ms *MemoryStore) Update(ctx context.Context, id string, params UpdateParams) (Order, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	o, ok := ms.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}

	if params.Items != nil {
		o.Items = slices.Clone(params.Items)
	}
	if params.Total != nil {
		o.Total = *params.Total
	}
	if params.Status != nil {
		o.Status = *params.Status
	}
	o.UpdatedAt = ms.now().UTC()

	ms.orders[id] = o

	o.Items = slices.Clone(o.Items)
	return o, nil
}

func (ms *MemoryStore) Delete(ctx context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.orders[id]; !ok {
		return ErrOrderNotFound
	}

	delete(ms.orders, id)
	return nil
}

func (ms *MemoryStore) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var result []Order
	for _, o := range ms.orders {
		if o.UserID == userID {
			o.Items = slices.Clone(o.Items)
			result = append(result, o)
		}
	}
	return result, nil
}

func (ms *MemoryStore) List(ctx context.Context) ([]Order, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := make([]Order, 0, len(ms.orders))
	for _, o := range ms.orders {
		o.Items = slices.Clone(o.Items)
		result = append(result, o)
	}
	return result, nil
}
