package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderflow/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("msg", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "msg", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-time.Second)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), time.Second)
}

func TestMessagingIdentifiers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "message_id", logger.MessageID("m1").Key)
	assert.Equal(t, "correlation_id", logger.CorrelationID("c1").Key)
	assert.Equal(t, "queue_url", logger.QueueURL("https://sqs.test/q").Key)
	assert.Equal(t, "order_id", logger.OrderID("o1").Key)

	// Empty values collapse to the empty Attr for nil safety.
	assert.True(t, logger.MessageID("").Equal(slog.Attr{}))
	assert.True(t, logger.CorrelationID("").Equal(slog.Attr{}))
	assert.True(t, logger.QueueURL("").Equal(slog.Attr{}))
	assert.True(t, logger.OrderID("").Equal(slog.Attr{}))
}

func TestGenericMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "component", logger.Component("consumer").Key)
	assert.Equal(t, "event", logger.Event("startup").Key)
	assert.Equal(t, "type", logger.Type("ORDER_GET").Key)
	assert.Equal(t, "result", logger.Result("success").Key)

	count := logger.Count("messages", 3)
	assert.Equal(t, "messages", count.Key)
	assert.Equal(t, int64(3), count.Value.Int64())

	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
	assert.True(t, logger.ID("k", nil).Equal(slog.Attr{}))
}

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack()
	require.Equal(t, "stack", attr.Key)
	assert.True(t, strings.Contains(attr.Value.String(), "goroutine"))
}

func TestCaller(t *testing.T) {
	t.Parallel()
	attr := logger.Caller()
	require.Equal(t, "caller", attr.Key)
	assert.Contains(t, attr.Value.String(), "attr_test.go")
}
