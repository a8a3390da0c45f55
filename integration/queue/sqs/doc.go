// Package sqs adapts Amazon SQS to the queue capabilities the core needs:
// long-poll batch receive, delete-on-ack, and attributed send.
//
// This package implements consumer.QueueClient and reply.Sender using the
// AWS SQS SDK v2, with support for Amazon SQS, LocalStack, ElasticMQ, and
// other SQS-compatible services via a custom endpoint.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/orderflow/integration/queue/sqs"
//
//	cfg := sqs.Config{
//		Region:      "us-east-1",
//		AccessKeyID: "AKIA...", // Optional - uses IAM roles if empty
//		SecretKey:   "...",     // Optional - uses IAM roles if empty
//	}
//
//	queue, err := sqs.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	msgs, err := queue.ReceiveBatch(ctx, queueURL, 10, 20*time.Second)
//
// For local development against LocalStack or ElasticMQ set Endpoint:
//
//	cfg := sqs.Config{
//		Region:   "us-east-1",
//		Endpoint: "http://localhost:4566",
//	}
//
// Errors are classified into package sentinels (ErrQueueNotFound,
// ErrThrottled, ErrServiceUnavailable, ...) checkable with errors.Is, so
// callers can separate retryable transport failures from configuration
// problems without inspecting SDK error strings.
package sqs
