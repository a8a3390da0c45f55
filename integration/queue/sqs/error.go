package sqs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
)

var (
	// ErrInvalidConfig is returned when required configuration is missing.
	ErrInvalidConfig = errors.New("invalid sqs configuration")

	// ErrQueueNotFound is returned when the target queue does not exist.
	ErrQueueNotFound = errors.New("queue does not exist")

	// ErrInvalidReceiptHandle is returned for malformed or expired receipt handles.
	ErrInvalidReceiptHandle = errors.New("invalid receipt handle")

	// ErrThrottled is returned when SQS throttles the request. Retryable.
	ErrThrottled = errors.New("request throttled")

	// ErrServiceUnavailable is returned for transient SQS availability issues. Retryable.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrAccessDenied is returned when credentials lack queue permissions.
	ErrAccessDenied = errors.New("access denied")

	// ErrOperationTimeout is returned when the context deadline expired.
	ErrOperationTimeout = errors.New("operation timed out")

	// ErrOperationCanceled is returned when the context was cancelled.
	ErrOperationCanceled = errors.New("operation canceled")
)

// classifyError converts SQS errors to domain-specific errors.
// Provides consistent error handling across all queue operations with proper
// classification for retry logic.
func classifyError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Context errors have highest priority for proper cancellation handling
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", ErrOperationCanceled, operation)
	}

	// Specific SQS error types for type-safe error checking
	var qne *types.QueueDoesNotExist
	if errors.As(err, &qne) {
		return fmt.Errorf("%w: %s operation", ErrQueueNotFound, operation)
	}

	var rhi *types.ReceiptHandleIsInvalid
	if errors.As(err, &rhi) {
		return fmt.Errorf("%w: %s operation", ErrInvalidReceiptHandle, operation)
	}

	var throttled *types.RequestThrottled
	if errors.As(err, &throttled) {
		return fmt.Errorf("%w: %s operation", ErrThrottled, operation)
	}

	// Generic API errors with proper retry classification
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied", "AccessDeniedException":
			return fmt.Errorf("%w: %s operation", ErrAccessDenied, operation)
		case "ThrottlingException", "RequestThrottled":
			return fmt.Errorf("%w: %s operation", ErrThrottled, operation)
		case "ServiceUnavailable", "InternalError":
			return fmt.Errorf("%w: %s operation", ErrServiceUnavailable, operation)
		case "QueueDoesNotExist", "AWS.SimpleQueueService.NonExistentQueue":
			return fmt.Errorf("%w: %s operation", ErrQueueNotFound, operation)
		case "ReceiptHandleIsInvalid":
			return fmt.Errorf("%w: %s operation", ErrInvalidReceiptHandle, operation)
		default:
			// Include error code for debugging while preserving original error
			return fmt.Errorf("%s operation failed (code: %s): %w", operation, code, err)
		}
	}

	// Default fallback with context preservation
	return fmt.Errorf("%s operation failed: %w", operation, err)
}
