package reply

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Sender is the queue capability the publisher needs: deliver a body with
// flat string attributes to a destination queue.
type Sender interface {
	Send(ctx context.Context, queueURL string, body []byte, attributes map[string]string) error
}

// Publisher serializes outcomes into reply messages and sends them to the
// replyTo destination named by the inbound command.
type Publisher struct {
	sender Sender
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the time source for reply timestamps. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPublisher creates a reply publisher backed by the given sender.
func NewPublisher(sender Sender, opts ...Option) (*Publisher, error) {
	if sender == nil {
		return nil, ErrSenderNil
	}

	p := &Publisher{
		sender: sender,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Publish sends the reply to replyTo. Calling with an empty replyTo is a
// no-op: fire-and-forget commands carry no reply destination and that is
// not an error. A transport failure is returned to the caller, which must
// still acknowledge the original command.
func (p *Publisher) Publish(ctx context.Context, replyTo string, r Reply) error {
	if replyTo == "" {
		p.logger.DebugContext(ctx, "no replyTo destination, skipping reply",
			slog.String("event_type", r.EventType),
			slog.String("correlation_id", r.CorrelationID))
		return nil
	}

	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeReply, err)
	}

	attrs := make(map[string]string, 2)
	if r.CorrelationID != "" {
		attrs[AttrCorrelationID] = r.CorrelationID
	}
	if r.EventType != "" {
		attrs[AttrEventType] = r.EventType
	}

	if err := p.sender.Send(ctx, replyTo, body, attrs); err != nil {
		return fmt.Errorf("%w: %v", ErrSendReply, err)
	}

	p.logger.DebugContext(ctx, "reply sent",
		slog.String("reply_to", replyTo),
		slog.String("event_type", r.EventType),
		slog.String("correlation_id", r.CorrelationID),
		slog.Bool("success", r.Success))

	return nil
}

// Timestamp formats the current time for a reply.
func (p *Publisher) Timestamp() string {
	return p.now().UTC().Format(time.RFC3339)
}
