package reply_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderflow/core/command"
	"github.com/dmitrymomot/orderflow/core/reply"
)

type sentMessage struct {
	QueueURL   string
	Body       []byte
	Attributes map[string]string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSender) Send(ctx context.Context, queueURL string, body []byte, attributes map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{QueueURL: queueURL, Body: body, Attributes: attributes})
	return nil
}

func (f *fakeSender) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func TestNewPublisher(t *testing.T) {
	t.Parallel()

	_, err := reply.NewPublisher(nil)
	assert.ErrorIs(t, err, reply.ErrSenderNil)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("success reply", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		p, err := reply.NewPublisher(sender, reply.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		r := reply.New(command.TypeOrderCreate, "c2", command.Ok(map[string]string{"id": "o1"}), p.Timestamp())
		require.NoError(t, p.Publish(context.Background(), "q2", r))

		sent := sender.messages()
		require.Len(t, sent, 1)
		assert.Equal(t, "q2", sent[0].QueueURL)
		assert.Equal(t, map[string]string{
			"correlationId": "c2",
			"eventType":     "ORDER_CREATE",
		}, sent[0].Attributes)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(sent[0].Body, &decoded))
		assert.Equal(t, "c2", decoded["correlationId"])
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, "ORDER_CREATE", decoded["eventType"])
		assert.Equal(t, "2025-06-01T12:30:00Z", decoded["timestamp"])
		assert.Equal(t, map[string]any{"id": "o1"}, decoded["data"])
		assert.NotContains(t, decoded, "errorMessage")
	})

	t.Run("failure reply carries errorMessage, no data", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		p, err := reply.NewPublisher(sender, reply.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		r := reply.New(command.TypeOrderGet, "c1", command.Fail(errors.New("Order not found")), p.Timestamp())
		require.NoError(t, p.Publish(context.Background(), "q2", r))

		sent := sender.messages()
		require.Len(t, sent, 1)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(sent[0].Body, &decoded))
		assert.Equal(t, "c1", decoded["correlationId"])
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, "Order not found", decoded["errorMessage"])
		assert.Equal(t, "ORDER_GET", decoded["eventType"])
		assert.NotContains(t, decoded, "data")
	})

	t.Run("empty replyTo is a no-op", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		p, err := reply.NewPublisher(sender)
		require.NoError(t, err)

		r := reply.New(command.TypeOrderGet, "c1", command.Ok(nil), p.Timestamp())
		require.NoError(t, p.Publish(context.Background(), "", r))
		assert.Empty(t, sender.messages())
	})

	t.Run("send failure surfaces to caller", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{err: errors.New("queue unreachable")}
		p, err := reply.NewPublisher(sender)
		require.NoError(t, err)

		r := reply.New(command.TypeOrderGet, "c1", command.Ok(nil), p.Timestamp())
		err = p.Publish(context.Background(), "q2", r)
		assert.ErrorIs(t, err, reply.ErrSendReply)
	})

	t.Run("empty correlation id omits the attribute", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		p, err := reply.NewPublisher(sender)
		require.NoError(t, err)

		r := reply.New(command.TypeOrderGet, "", command.Ok(nil), p.Timestamp())
		require.NoError(t, p.Publish(context.Background(), "q2", r))

		sent := sender.messages()
		require.Len(t, sent, 1)
		assert.NotContains(t, sent[0].Attributes, "correlationId")
		assert.Equal(t, "ORDER_GET", sent[0].Attributes["eventType"])
	})
}

func TestPublisher_Timestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+2", 2*3600))
	p, err := reply.NewPublisher(&fakeSender{}, reply.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	// Always UTC, RFC 3339.
	assert.Equal(t, "2025-01-02T01:04:05Z", p.Timestamp())
}
