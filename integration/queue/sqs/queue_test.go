package sqs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sqsaws "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderflow/integration/queue/sqs"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) ReceiveMessage(ctx context.Context, params *sqsaws.ReceiveMessageInput, optFns ...func(*sqsaws.Options)) (*sqsaws.ReceiveMessageOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sqsaws.ReceiveMessageOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClient) DeleteMessage(ctx context.Context, params *sqsaws.DeleteMessageInput, optFns ...func(*sqsaws.Options)) (*sqsaws.DeleteMessageOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sqsaws.DeleteMessageOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClient) SendMessage(ctx context.Context, params *sqsaws.SendMessageInput, optFns ...func(*sqsaws.Options)) (*sqsaws.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*sqsaws.SendMessageOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestQueue(t *testing.T) (*sqs.Queue, *mockClient) {
	t.Helper()

	client := &mockClient{}
	q, err := sqs.New(context.Background(), sqs.Config{Region: "us-east-1"}, sqs.WithClient(client))
	require.NoError(t, err)
	return q, client
}

func TestNew_MissingRegion(t *testing.T) {
	t.Parallel()

	_, err := sqs.New(context.Background(), sqs.Config{})
	assert.ErrorIs(t, err, sqs.ErrInvalidConfig)
}

func TestQueue_ReceiveBatch(t *testing.T) {
	t.Parallel()

	t.Run("maps messages and attributes", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("ReceiveMessage", mock.Anything, mock.MatchedBy(func(in *sqsaws.ReceiveMessageInput) bool {
			return aws.ToString(in.QueueUrl) == "https://sqs.test/orders" &&
				in.MaxNumberOfMessages == 10 &&
				in.WaitTimeSeconds == 20 &&
				len(in.MessageAttributeNames) == 1 &&
				in.MessageAttributeNames[0] == "All"
		})).Return(&sqsaws.ReceiveMessageOutput{
			Messages: []types.Message{
				{
					MessageId:     aws.String("m1"),
					Body:          aws.String(`{"type":"ORDER_GET"}`),
					ReceiptHandle: aws.String("rh1"),
					MessageAttributes: map[string]types.MessageAttributeValue{
						"replyTo": {DataType: aws.String("String"), StringValue: aws.String("https://sqs.test/replies")},
						"binary":  {DataType: aws.String("Binary"), BinaryValue: []byte{0x01}},
					},
				},
				{
					MessageId:     aws.String("m2"),
					Body:          aws.String("{}"),
					ReceiptHandle: aws.String("rh2"),
				},
			},
		}, nil)

		messages, err := q.ReceiveBatch(context.Background(), "https://sqs.test/orders", 10, 20*time.Second)
		require.NoError(t, err)
		require.Len(t, messages, 2)

		assert.Equal(t, "m1", messages[0].ID)
		assert.Equal(t, `{"type":"ORDER_GET"}`, string(messages[0].Body))
		assert.Equal(t, "rh1", messages[0].ReceiptHandle)
		assert.Equal(t, map[string]string{"replyTo": "https://sqs.test/replies"}, messages[0].Attributes)

		assert.Equal(t, "m2", messages[1].ID)
		assert.Nil(t, messages[1].Attributes)

		client.AssertExpectations(t)
	})

	t.Run("empty queue returns no messages", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("ReceiveMessage", mock.Anything, mock.Anything).
			Return(&sqsaws.ReceiveMessageOutput{}, nil)

		messages, err := q.ReceiveBatch(context.Background(), "https://sqs.test/orders", 10, time.Second)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("missing queue is classified", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("ReceiveMessage", mock.Anything, mock.Anything).
			Return(nil, &types.QueueDoesNotExist{Message: aws.String("no such queue")})

		_, err := q.ReceiveBatch(context.Background(), "https://sqs.test/missing", 10, time.Second)
		assert.ErrorIs(t, err, sqs.ErrQueueNotFound)
	})
}

func TestQueue_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes by receipt handle", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(in *sqsaws.DeleteMessageInput) bool {
			return aws.ToString(in.QueueUrl) == "https://sqs.test/orders" &&
				aws.ToString(in.ReceiptHandle) == "rh1"
		})).Return(&sqsaws.DeleteMessageOutput{}, nil)

		require.NoError(t, q.Delete(context.Background(), "https://sqs.test/orders", "rh1"))
		client.AssertExpectations(t)
	})

	t.Run("expired handle is classified", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("DeleteMessage", mock.Anything, mock.Anything).
			Return(nil, &types.ReceiptHandleIsInvalid{Message: aws.String("expired")})

		err := q.Delete(context.Background(), "https://sqs.test/orders", "stale")
		assert.ErrorIs(t, err, sqs.ErrInvalidReceiptHandle)
	})
}

func TestQueue_Send(t *testing.T) {
	t.Parallel()

	t.Run("sends body with string attributes", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqsaws.SendMessageInput) bool {
			attr, ok := in.MessageAttributes["correlationId"]
			return aws.ToString(in.QueueUrl) == "https://sqs.test/replies" &&
				aws.ToString(in.MessageBody) == `{"success":true}` &&
				ok &&
				aws.ToString(attr.DataType) == "String" &&
				aws.ToString(attr.StringValue) == "c1"
		})).Return(&sqsaws.SendMessageOutput{}, nil)

		err := q.Send(context.Background(), "https://sqs.test/replies", []byte(`{"success":true}`), map[string]string{"correlationId": "c1"})
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("no attributes sends nil attribute map", func(t *testing.T) {
		t.Parallel()

		q, client := newTestQueue(t)
		client.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqsaws.SendMessageInput) bool {
			return in.MessageAttributes == nil
		})).Return(&sqsaws.SendMessageOutput{}, nil)

		require.NoError(t, q.Send(context.Background(), "https://sqs.test/replies", []byte("{}"), nil))
	})
}

type apiError struct {
	code string
}

func (e *apiError) Error() string                 { return e.code }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.code }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	q, client := newTestQueue(t)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "access denied", err: &apiError{code: "AccessDenied"}, want: sqs.ErrAccessDenied},
		{name: "throttled", err: &apiError{code: "ThrottlingException"}, want: sqs.ErrThrottled},
		{name: "service unavailable", err: &apiError{code: "ServiceUnavailable"}, want: sqs.ErrServiceUnavailable},
		{name: "legacy queue not found code", err: &apiError{code: "AWS.SimpleQueueService.NonExistentQueue"}, want: sqs.ErrQueueNotFound},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: sqs.ErrOperationTimeout},
		{name: "canceled", err: context.Canceled, want: sqs.ErrOperationCanceled},
	}

	for _, tt := range tests {
		client.On("ReceiveMessage", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

		_, err := q.ReceiveBatch(context.Background(), "https://sqs.test/orders", 1, time.Second)
		assert.ErrorIs(t, err, tt.want, tt.name)
	}

	t.Run("unknown code preserves the original error", func(t *testing.T) {
		cause := &apiError{code: "SomethingNew"}
		client.On("ReceiveMessage", mock.Anything, mock.Anything).Return(nil, cause).Once()

		_, err := q.ReceiveBatch(context.Background(), "https://sqs.test/orders", 1, time.Second)
		require.Error(t, err)
		assert.ErrorContains(t, err, "SomethingNew")

		var apiErr smithy.APIError
		assert.ErrorAs(t, err, &apiErr)
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		cause := errors.New("network down")
		client.On("ReceiveMessage", mock.Anything, mock.Anything).Return(nil, cause).Once()

		_, err := q.ReceiveBatch(context.Background(), "https://sqs.test/orders", 1, time.Second)
		assert.ErrorIs(t, err, cause)
	})
}
