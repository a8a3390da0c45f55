// Package consumer implements the polling loop that drives the command
// processor: receive a batch from the inbound queue, dispatch each message,
// attempt a reply, and acknowledge.
//
// # Delivery semantics
//
// A message is considered consumed once handling was attempted, not only on
// success. Application-level failures (order not found, validation errors)
// are terminal outcomes communicated through the reply and the message is
// still deleted. Malformed bodies are logged and deleted so a poison
// message cannot block the queue. Only transport failures behave
// differently: a failed receive or delete is logged, followed by a fixed
// backoff pause, and the message returns to the queue via the visibility
// timeout.
//
// # Lifecycle
//
// The loop is an explicit run/stop task. Start blocks and polls until the
// context is cancelled or Stop is called; the shutdown signal is checked
// before each new batch and in-flight messages complete before the loop
// exits. Run adapts the pair to the errgroup pattern:
//
//	c, err := consumer.New(queueURL, queue, dispatcher, publisher,
//		consumer.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(c.Run(ctx))
//
// # Concurrency
//
// By default messages within a batch are processed sequentially in the
// order the queue returned them. WithMaxConcurrent raises the bound; each
// in-flight message then completes its own dispatch, reply, and acknowledge
// independently, and no message's deletion is ever ordered behind another's
// completion.
package consumer
