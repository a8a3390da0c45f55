package sqs

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sqsaws "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/dmitrymomot/orderflow/core/consumer"
	"github.com/dmitrymomot/orderflow/core/reply"
)

// Compile-time checks that Queue satisfies the core capabilities.
var (
	_ consumer.QueueClient = (*Queue)(nil)
	_ reply.Sender         = (*Queue)(nil)
)

// Client defines the interface for SQS operations used by Queue.
type Client interface {
	ReceiveMessage(ctx context.Context, params *sqsaws.ReceiveMessageInput, optFns ...func(*sqsaws.Options)) (*sqsaws.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqsaws.DeleteMessageInput, optFns ...func(*sqsaws.Options)) (*sqsaws.DeleteMessageOutput, error)
	SendMessage(ctx context.Context, params *sqsaws.SendMessageInput, optFns ...func(*sqsaws.Options)) (*sqsaws.SendMessageOutput, error)
}

// Queue adapts the SQS API to the consumer's QueueClient and the reply
// publisher's Sender. The underlying SQS client is safe for concurrent use,
// so a single Queue can be shared across the process.
type Queue struct {
	client Client
}

// Config contains connection configuration for SQS.
type Config struct {
	Region      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID string `env:"AWS_ACCESS_KEY_ID"`
	SecretKey   string `env:"AWS_SECRET_ACCESS_KEY"`

	// Endpoint overrides the SQS endpoint for LocalStack, ElasticMQ, and
	// other SQS-compatible services.
	Endpoint string `env:"AWS_SQS_ENDPOINT"`
}

// Option defines a function that configures Queue construction.
type Option func(*queueOptions)

type queueOptions struct {
	client        Client
	httpClient    *http.Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*sqsaws.Options)
}

// WithClient sets a custom pre-configured SQS client.
// Primarily used for testing with mocks.
func WithClient(client Client) Option {
	return func(o *queueOptions) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for SQS requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *queueOptions) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *queueOptions) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom SQS client option.
func WithClientOption(option func(*sqsaws.Options)) Option {
	return func(o *queueOptions) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates an SQS-backed queue adapter.
func New(ctx context.Context, cfg Config, opts ...Option) (*Queue, error) {
	if cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &queueOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Use provided client or create a new one
	var client Client
	if options.client != nil {
		client = options.client
	} else {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		// Add static credentials if provided (fallback to IAM roles/env vars otherwise)
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}

		awsOptions = append(awsOptions, options.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, classifyError(err, "load AWS config")
		}

		client = sqsaws.NewFromConfig(awsConfig, func(o *sqsaws.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}

			for _, opt := range options.clientOptions {
				opt(o)
			}
		})
	}

	return &Queue{client: client}, nil
}

// ReceiveBatch long-polls the queue for up to maxMessages. All message
// attributes are requested so producers can pass routing metadata (such as
// replyTo) outside the body.
func (q *Queue) ReceiveBatch(ctx context.Context, queueURL string, maxMessages int32, wait time.Duration) ([]consumer.Message, error) {
	out, err := q.client.ReceiveMessage(ctx, &sqsaws.ReceiveMessageInput{
		QueueUrl:              aws.String(queueURL),
		MaxNumberOfMessages:   maxMessages,
		WaitTimeSeconds:       int32(wait / time.Second),
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return nil, classifyError(err, "receive messages")
	}

	messages := make([]consumer.Message, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, consumer.Message{
			ID:            aws.ToString(m.MessageId),
			Body:          []byte(aws.ToString(m.Body)),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
			Attributes:    stringAttributes(m.MessageAttributes),
		})
	}
	return messages, nil
}

// Delete acknowledges a delivery. The receipt handle is only valid for the
// delivery it came from and must be used at most once.
func (q *Queue) Delete(ctx context.Context, queueURL string, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqsaws.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return classifyError(err, "delete message")
	}
	return nil
}

// Send delivers a message body with flat string attributes to a queue.
func (q *Queue) Send(ctx context.Context, queueURL string, body []byte, attributes map[string]string) error {
	var attrs map[string]types.MessageAttributeValue
	if len(attributes) > 0 {
		attrs = make(map[string]types.MessageAttributeValue, len(attributes))
		for k, v := range attributes {
			attrs[k] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
	}

	_, err := q.client.SendMessage(ctx, &sqsaws.SendMessageInput{
		QueueUrl:          aws.String(queueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: attrs,
	})
	if err != nil {
		return classifyError(err, "send message")
	}
	return nil
}

// stringAttributes flattens SQS message attributes to the string-keyed map
// the core works with. Binary attributes are ignored.
func stringAttributes(in map[string]types.MessageAttributeValue) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		if v.StringValue != nil {
			out[k] = *v.StringValue
		}
	}
	return out
}
