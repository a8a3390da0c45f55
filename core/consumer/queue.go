package consumer

import (
	"context"
	"time"
)

// Message is one delivery pulled from the inbound queue. ReceiptHandle is
// owned by the queue client, retained until deletion, and used exactly once
// per delivery.
type Message struct {
	ID            string
	Body          []byte
	ReceiptHandle string
	Attributes    map[string]string
}

// QueueClient is the transport capability the consumer polls against.
// Delivery is at-least-once with no ordering guarantee; a message that is
// received but never deleted becomes visible again after the queue's
// visibility timeout.
type QueueClient interface {
	// ReceiveBatch long-polls for up to maxMessages, waiting at most wait
	// for messages to become available.
	ReceiveBatch(ctx context.Context, queueURL string, maxMessages int32, wait time.Duration) ([]Message, error)

	// Delete acknowledges a delivery, removing it from the queue.
	Delete(ctx context.Context, queueURL string, receiptHandle string) error
}
