package consumer

import (
	"log/slog"
	"time"
)

type consumerOptions struct {
	maxMessages     int32
	waitTime        time.Duration
	errorBackoff    time.Duration
	shutdownTimeout time.Duration
	handlerTimeout  time.Duration
	maxConcurrent   int
	logger          *slog.Logger
}

// Option configures a Consumer.
type Option func(*consumerOptions)

// WithMaxMessages sets the receive batch size (1-10 for SQS).
func WithMaxMessages(n int32) Option {
	return func(o *consumerOptions) {
		if n > 0 {
			o.maxMessages = n
		}
	}
}

// WithWaitTime sets the long-poll wait per receive call.
func WithWaitTime(d time.Duration) Option {
	return func(o *consumerOptions) {
		if d > 0 {
			o.waitTime = d
		}
	}
}

// WithErrorBackoff sets the pause after a transport failure.
func WithErrorBackoff(d time.Duration) Option {
	return func(o *consumerOptions) {
		if d > 0 {
			o.errorBackoff = d
		}
	}
}

// WithShutdownTimeout sets how long Stop waits for in-flight messages.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *consumerOptions) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithHandlerTimeout bounds a single message's handling. Zero disables the
// per-message timeout.
func WithHandlerTimeout(d time.Duration) Option {
	return func(o *consumerOptions) {
		if d >= 0 {
			o.handlerTimeout = d
		}
	}
}

// WithMaxConcurrent bounds in-flight messages. Values above 1 trade the
// sequential in-batch ordering for throughput; each message still completes
// its own dispatch, reply, and acknowledge independently.
func WithMaxConcurrent(n int) Option {
	return func(o *consumerOptions) {
		if n > 0 {
			o.maxConcurrent = n
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *consumerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
