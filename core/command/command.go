package command

import (
	"encoding/json"
	"fmt"
)

// Type identifies the kind of command carried by an envelope.
type Type string

const (
	TypeOrderCreate Type = "ORDER_CREATE"
	TypeOrderGet    Type = "ORDER_GET"
	TypeOrderUpdate Type = "ORDER_UPDATE"
	TypeOrderDelete Type = "ORDER_DELETE"
)

// Envelope is the decoded inbound command message.
//
// CorrelationID is caller-assigned and echoed byte-identical in the reply;
// it is the only field a caller can use to match async responses to requests.
// ReplyTo names the reply queue; when empty the command is fire-and-forget.
type Envelope struct {
	Type          Type            `json:"type"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	ReplyTo       string          `json:"replyTo,omitempty"`
}

// Typed command payloads. The envelope Data field decodes into exactly one
// of these depending on Type, giving each command kind a static contract
// instead of a free-form map.

// CreateOrder is the payload for TypeOrderCreate.
type CreateOrder struct {
	UserID string   `json:"userId"`
	Items  []string `json:"items"`
	Total  float64  `json:"total"`
}

// GetOrder is the payload for TypeOrderGet.
type GetOrder struct {
	ID string `json:"id"`
}

// UpdateOrder is the payload for TypeOrderUpdate. ID selects the order;
// the remaining fields are optional partial updates.
type UpdateOrder struct {
	ID     string   `json:"id"`
	Items  []string `json:"items,omitempty"`
	Total  *float64 `json:"total,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// DeleteOrder is the payload for TypeOrderDelete.
type DeleteOrder struct {
	ID string `json:"id"`
}

// Decode parses a raw message body into an Envelope. It validates only the
// envelope shape; payload decoding is deferred to the matched handler so a
// payload problem surfaces as an application failure, not a poison message.
func Decode(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("%w: missing type field", ErrMalformedMessage)
	}
	return env, nil
}
