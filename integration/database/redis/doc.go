// Package redis provides Redis client initialization with connection
// verification plus a Redis-backed implementation of the order store.
//
// Connect validates the connection URL, attempts connection with
// exponential-backoff retries, and verifies connectivity with a ping before
// returning the client. Healthcheck returns a probe function suitable for
// readiness endpoints.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		ScanBatchSize  int           `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// # Order store
//
// OrderStore persists orders as JSON values under the "order:" key prefix
// and satisfies order.Store, so the command handlers work identically
// against memory and Redis backends:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store, err := redis.NewOrderStore(client)
//	if err != nil {
//		return err
//	}
//
//	handlers, err := command.OrderHandlers(store)
//
// List operations use cursor-based SCAN with a configurable batch size, so
// large keyspaces are never loaded with a blocking KEYS call.
//
// # Error Handling
//
// The package defines domain-specific errors that can be checked using
// errors.Is():
//
//   - ErrFailedToParseRedisConnString: malformed connection URL
//   - ErrRedisNotReady: Redis did not become ready within the timeout
//   - ErrEmptyConnectionURL: no connection URL provided
//   - ErrHealthcheckFailed: health check ping failed
//
// Store operations translate missing keys into order.ErrOrderNotFound.
package redis
