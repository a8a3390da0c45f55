package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/orderflow/core/order"
)

// Compile-time check that OrderStore implements order.Store.
var _ order.Store = (*OrderStore)(nil)

// defaultKeyPrefix namespaces order keys so the store can share a Redis
// database with other data.
const defaultKeyPrefix = "order:"

// OrderStore is a Redis-backed order.Store. Orders are stored as JSON
// values under a key prefix; listing uses SCAN to stay cursor-based on
// large keyspaces.
type OrderStore struct {
	client    *redis.Client
	keyPrefix string
	scanBatch int64
	now       func() time.Time
}

// StoreOption configures an OrderStore.
type StoreOption func(*OrderStore)

// WithKeyPrefix overrides the key namespace. Defaults to "order:".
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *OrderStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// WithScanBatchSize sets the SCAN page size used by list operations.
func WithScanBatchSize(n int) StoreOption {
	return func(s *OrderStore) {
		if n > 0 {
			s.scanBatch = int64(n)
		}
	}
}

// WithClock sets the time source. Used in tests for deterministic timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *OrderStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewOrderStore creates a Redis-backed order store.
func NewOrderStore(client *redis.Client, opts ...StoreOption) (*OrderStore, error) {
	if client == nil {
		return nil, ErrClientNil
	}

	s := &OrderStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		scanBatch: 1000,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *OrderStore) key(id string) string {
	return s.keyPrefix + id
}

func (s *OrderStore) Create(ctx context.Context, params order.CreateParams) (order.Order, error) {
	if params.UserID == "" {
		return order.Order{}, order.ErrInvalidParams
	}

	now := s.now().UTC()
	o := order.Order{
		ID:        uuid.New().String(),
		UserID:    params.UserID,
		Items:     slices.Clone(params.Items),
		Total:     params.Total,
		Status:    order.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.set(ctx, o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (s *OrderStore) Get(ctx context.Context, id string) (order.Order, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return order.Order{}, order.ErrOrderNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to get order %s: %w", id, err)
	}

	var o order.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return order.Order{}, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return o, nil
}

func (s *OrderStore) Update(ctx context.Context, id string, params order.UpdateParams) (order.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
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
	o.UpdatedAt = s.now().UTC()

	if err := s.set(ctx, o); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	if n == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var result []order.Order
	for _, o := range all {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderStore) List(ctx context.Context) ([]order.Order, error) {
	var (
		result []order.Order
		cursor uint64
	)

	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.keyPrefix+"*", s.scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan orders: %w", err)
		}

		if len(keys) > 0 {
			values, err := s.client.MGet(ctx, keys...).Result()
			if err != nil {
				return nil, fmt.Errorf("failed to fetch orders: %w", err)
			}

			for _, v := range values {
				// Keys can expire between SCAN and MGET.
				raw, ok := v.(string)
				if !ok {
					continue
				}
				var o order.Order
				if err := json.Unmarshal([]byte(raw), &o); err != nil {
					return nil, fmt.Errorf("failed to decode order: %w", err)
				}
				result = append(result, o)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return result, nil
}

func (s *OrderStore) set(ctx context.Context, o order.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to encode order %s: %w", o.ID, err)
	}
	if err := s.client.Set(ctx, s.key(o.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store order %s: %w", o.ID, err)
	}
	return nil
}
