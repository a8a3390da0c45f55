package consumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/orderflow/core/command"
	"github.com/dmitrymomot/orderflow/core/reply"
)

// replyToAttr is the message attribute carrying the reply queue URL when
// the producer sets it outside the body. The body field wins when both are
// present.
const replyToAttr = "replyTo"

// Consumer owns the consume, dispatch, reply, acknowledge cycle for one
// inbound queue. It is the single logical consumer in a process: one
// polling loop, with optional bounded concurrency inside a batch.
type Consumer struct {
	queue      QueueClient
	dispatcher *command.Dispatcher
	publisher  *reply.Publisher
	queueURL   string

	maxMessages     int32
	waitTime        time.Duration
	errorBackoff    time.Duration
	shutdownTimeout time.Duration
	handlerTimeout  time.Duration

	sem chan struct{}
	wg  sync.WaitGroup
	mu  sync.RWMutex

	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// backoffPending is set by any goroutine that hit a transport failure
	// on delete, so the loop pauses before the next receive.
	backoffPending atomic.Bool

	// Observability metrics
	processed      atomic.Int64
	failed         atomic.Int64
	poisoned       atomic.Int64
	replyFailures  atomic.Int64
	activeMessages atomic.Int32
}

// Stats provides observability metrics for monitoring and tests.
type Stats struct {
	Processed      int64 // Messages dispatched with a successful outcome
	Failed         int64 // Messages dispatched with an application-level failure
	Poisoned       int64 // Malformed messages dropped after deletion
	ReplyFailures  int64 // Replies that could not be sent
	ActiveMessages int32 // Messages currently being handled
	IsRunning      bool  // Whether the polling loop is running
}

// New creates a consumer for the given inbound queue.
func New(queueURL string, queue QueueClient, dispatcher *command.Dispatcher, publisher *reply.Publisher, opts ...Option) (*Consumer, error) {
	if queueURL == "" {
		return nil, ErrQueueURLEmpty
	}
	if queue == nil {
		return nil, ErrQueueClientNil
	}
	if dispatcher == nil {
		return nil, ErrDispatcherNil
	}
	if publisher == nil {
		return nil, ErrPublisherNil
	}

	options := &consumerOptions{
		maxMessages:     10,
		waitTime:        20 * time.Second,
		errorBackoff:    5 * time.Second,
		shutdownTimeout: 30 * time.Second,
		maxConcurrent:   1,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Consumer{
		queue:           queue,
		dispatcher:      dispatcher,
		publisher:       publisher,
		queueURL:        queueURL,
		maxMessages:     options.maxMessages,
		waitTime:        options.waitTime,
		errorBackoff:    options.errorBackoff,
		shutdownTimeout: options.shutdownTimeout,
		handlerTimeout:  options.handlerTimeout,
		sem:             make(chan struct{}, options.maxConcurrent),
		logger:          options.logger,
	}, nil
}

// NewFromConfig creates a consumer from configuration. Additional options
// override config values.
func NewFromConfig(cfg Config, queue QueueClient, dispatcher *command.Dispatcher, publisher *reply.Publisher, opts ...Option) (*Consumer, error) {
	allOpts := append([]Option{
		WithMaxMessages(cfg.MaxMessages),
		WithWaitTime(cfg.WaitTime),
		WithErrorBackoff(cfg.ErrorBackoff),
		WithShutdownTimeout(cfg.ShutdownTimeout),
		WithHandlerTimeout(cfg.HandlerTimeout),
		WithMaxConcurrent(cfg.MaxConcurrent),
	}, opts...)

	return New(cfg.QueueURL, queue, dispatcher, publisher, allOpts...)
}

// Start runs the polling loop. It blocks until the context is cancelled or
// Stop is called. Use Run for the errgroup pattern or call Start in a
// goroutine.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	c.logger.InfoContext(c.ctx, "consumer started",
		slog.String("queue_url", c.queueURL),
		slog.Int("max_messages", int(c.maxMessages)),
		slog.Duration("wait_time", c.waitTime),
		slog.Int("max_concurrent", cap(c.sem)))

	for {
		// Shutdown is checked before each new batch is requested; messages
		// already in flight are allowed to complete.
		select {
		case <-c.ctx.Done():
			c.logger.InfoContext(context.Background(), "consumer stopping")
			return c.ctx.Err()
		default:
		}

		if c.backoffPending.Swap(false) {
			if !c.pause() {
				continue
			}
		}

		messages, err := c.queue.ReceiveBatch(c.ctx, c.queueURL, c.maxMessages, c.waitTime)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			c.logger.ErrorContext(c.ctx, "failed to receive messages",
				slog.String("queue_url", c.queueURL),
				slog.String("error", err.Error()))
			c.pause()
			continue
		}

		for _, msg := range messages {
			// Semaphore acquisition orders message starts: with capacity 1
			// each message fully completes before the next begins, in the
			// order the queue returned them.
			c.sem <- struct{}{}
			c.wg.Add(1)

			go func(m Message) {
				defer c.wg.Done()
				defer func() { <-c.sem }()
				c.process(m)
			}(msg)
		}
	}
}

// Stop gracefully shuts down the consumer, waiting for in-flight messages
// up to the shutdown timeout.
func (c *Consumer) Stop() error {
	c.mu.Lock()
	if c.cancel == nil {
		c.mu.Unlock()
		return ErrNotStarted
	}
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	cancel()

	c.logger.InfoContext(context.Background(), "consumer stopping, waiting for in-flight messages",
		slog.Duration("timeout", c.shutdownTimeout))

	ctx, ctxCancel := context.WithTimeout(context.Background(), c.shutdownTimeout)
	defer ctxCancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.InfoContext(context.Background(), "consumer stopped cleanly")
		return nil
	case <-ctx.Done():
		c.logger.WarnContext(context.Background(), "consumer shutdown timeout exceeded",
			slog.Duration("timeout", c.shutdownTimeout))
		return fmt.Errorf("shutdown timeout exceeded after %s", c.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
func (c *Consumer) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- c.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = c.Stop()
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// process walks one message through decode, dispatch, reply, acknowledge.
//
// The message is deleted whenever handling was attempted: successful
// dispatch, application failure, decode failure, and unknown command type
// all acknowledge. Only a transport failure on the delete call itself
// leaves the message for visibility-timeout redelivery.
func (c *Consumer) process(m Message) {
	start := time.Now()

	c.activeMessages.Add(1)
	defer c.activeMessages.Add(-1)

	// Handling is detached from the loop context so graceful shutdown does
	// not interrupt a message already in flight.
	ctx := context.WithoutCancel(c.ctx)
	if c.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.handlerTimeout)
		defer cancel()
	}

	env, err := command.Decode(m.Body)
	if err != nil {
		// Poison containment: a malformed body must not block the queue, so
		// the message is deleted without a reply.
		c.poisoned.Add(1)
		c.logger.WarnContext(ctx, "dropping malformed message",
			slog.String("message_id", m.ID),
			slog.String("error", err.Error()))
		c.ack(ctx, m)
		return
	}

	replyTo := env.ReplyTo
	if replyTo == "" {
		replyTo = m.Attributes[replyToAttr]
	}

	outcome, err := c.dispatcher.Dispatch(ctx, env)
	if err != nil {
		// Unknown command type under the drop policy: consumed, no reply.
		c.logger.WarnContext(ctx, "skipping command",
			slog.String("message_id", m.ID),
			slog.String("type", string(env.Type)),
			slog.String("error", err.Error()))
		c.ack(ctx, m)
		return
	}

	// Attempt-reply and acknowledge are independent ordered steps: a reply
	// failure is captured here and must never trigger redelivery of the
	// original command.
	r := reply.New(env.Type, env.CorrelationID, outcome, c.publisher.Timestamp())
	if err := c.publisher.Publish(ctx, replyTo, r); err != nil {
		c.replyFailures.Add(1)
		c.logger.ErrorContext(ctx, "failed to send reply",
			slog.String("message_id", m.ID),
			slog.String("reply_to", replyTo),
			slog.String("correlation_id", env.CorrelationID),
			slog.String("error", err.Error()))
	}

	if outcome.Success {
		c.processed.Add(1)
	} else {
		c.failed.Add(1)
	}

	c.logger.InfoContext(ctx, "message processed",
		slog.String("message_id", m.ID),
		slog.String("type", string(env.Type)),
		slog.String("correlation_id", env.CorrelationID),
		slog.Bool("success", outcome.Success),
		slog.Duration("duration", time.Since(start)))

	c.ack(ctx, m)
}

// ack deletes the message from the queue. A failed delete is a transport
// error: the message stays on the queue for redelivery and the loop backs
// off before the next receive.
func (c *Consumer) ack(ctx context.Context, m Message) {
	if err := c.queue.Delete(ctx, c.queueURL, m.ReceiptHandle); err != nil {
		c.logger.ErrorContext(ctx, "failed to delete message",
			slog.String("message_id", m.ID),
			slog.String("error", err.Error()))
		c.backoffPending.Store(true)
	}
}

// pause sleeps for the error backoff, returning false if the consumer was
// stopped while waiting.
func (c *Consumer) pause() bool {
	select {
	case <-c.ctx.Done():
		return false
	case <-time.After(c.errorBackoff):
		return true
	}
}

// Stats returns current counters for observability and tests.
func (c *Consumer) Stats() Stats {
	c.mu.RLock()
	isRunning := c.cancel != nil
	c.mu.RUnlock()

	return Stats{
		Processed:      c.processed.Load(),
		Failed:         c.failed.Load(),
		Poisoned:       c.poisoned.Load(),
		ReplyFailures:  c.replyFailures.Load(),
		ActiveMessages: c.activeMessages.Load(),
		IsRunning:      isRunning,
	}
}

// Healthcheck validates that the consumer is running and not saturated.
// The returned error can be checked with errors.Is.
func (c *Consumer) Healthcheck(ctx context.Context) error {
	stats := c.Stats()

	if !stats.IsRunning {
		return errors.Join(ErrHealthcheckFailed, ErrConsumerNotRunning)
	}

	maxConcurrent := int32(cap(c.sem))
	if stats.ActiveMessages >= maxConcurrent {
		return errors.Join(ErrHealthcheckFailed, ErrConsumerOverloaded,
			fmt.Errorf("%d/%d slots busy", stats.ActiveMessages, maxConcurrent))
	}

	return nil
}
