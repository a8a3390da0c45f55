package consumer

import "time"

// Config holds the polling loop configuration.
// Designed for environment-based loading with env struct tags.
type Config struct {
	QueueURL        string        `env:"ORDERS_QUEUE_URL,required"`
	MaxMessages     int32         `env:"ORDERS_QUEUE_MAX_MESSAGES" envDefault:"10"`
	WaitTime        time.Duration `env:"ORDERS_QUEUE_WAIT_TIME" envDefault:"20s"`
	ErrorBackoff    time.Duration `env:"ORDERS_QUEUE_ERROR_BACKOFF" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"ORDERS_QUEUE_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// HandlerTimeout bounds a single message's handling. Zero means no
	// per-message timeout.
	HandlerTimeout time.Duration `env:"ORDERS_QUEUE_HANDLER_TIMEOUT" envDefault:"0"`

	// MaxConcurrent bounds in-flight messages. The default of 1 keeps
	// in-batch processing sequential in queue-returned order.
	MaxConcurrent int `env:"ORDERS_QUEUE_MAX_CONCURRENT" envDefault:"1"`
}

// DefaultConfig returns the defaults used when options are not provided.
func DefaultConfig() Config {
	return Config{
		MaxMessages:     10,
		WaitTime:        20 * time.Second,
		ErrorBackoff:    5 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		HandlerTimeout:  0,
		MaxConcurrent:   1,
	}
}
