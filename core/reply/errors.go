package reply

import "errors"

var (
	// ErrSenderNil is returned when constructing a publisher without a sender.
	ErrSenderNil = errors.New("sender cannot be nil")

	// ErrEncodeReply is returned when the reply body fails to serialize.
	ErrEncodeReply = errors.New("failed to encode reply")

	// ErrSendReply is returned when the transport rejects the reply message.
	ErrSendReply = errors.New("failed to send reply")
)
