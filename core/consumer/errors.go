package consumer

import "errors"

var (
	// ErrQueueClientNil is returned when constructing a consumer without a queue client.
	ErrQueueClientNil = errors.New("queue client cannot be nil")

	// ErrDispatcherNil is returned when constructing a consumer without a dispatcher.
	ErrDispatcherNil = errors.New("dispatcher cannot be nil")

	// ErrPublisherNil is returned when constructing a consumer without a reply publisher.
	ErrPublisherNil = errors.New("reply publisher cannot be nil")

	// ErrQueueURLEmpty is returned when no inbound queue URL is configured.
	ErrQueueURLEmpty = errors.New("queue URL cannot be empty")

	// ErrAlreadyStarted is returned when starting a running consumer.
	ErrAlreadyStarted = errors.New("consumer already started")

	// ErrNotStarted is returned when stopping a consumer that was never started.
	ErrNotStarted = errors.New("consumer not started")

	// ErrHealthcheckFailed is returned when the consumer health check fails.
	ErrHealthcheckFailed = errors.New("healthcheck failed")

	// ErrConsumerNotRunning is returned by health checks while the consumer is stopped.
	ErrConsumerNotRunning = errors.New("consumer not running")

	// ErrConsumerOverloaded is returned by health checks when all processing slots are busy.
	ErrConsumerOverloaded = errors.New("consumer overloaded")
)
