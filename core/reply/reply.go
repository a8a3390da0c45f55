package reply

import "github.com/dmitrymomot/orderflow/core/command"

// Attribute keys duplicated onto the outbound message so reply consumers
// can filter and route without deserializing the body.
const (
	AttrCorrelationID = "correlationId"
	AttrEventType     = "eventType"
)

// Reply is the outbound response to a command. CorrelationID is echoed
// byte-identical from the inbound envelope; Timestamp is the emission time
// in RFC 3339.
type Reply struct {
	CorrelationID string `json:"correlationId"`
	Success       bool   `json:"success"`
	Data          any    `json:"data,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	Timestamp     string `json:"timestamp"`
	EventType     string `json:"eventType"`
}

// New builds a Reply from an outcome. Exactly one of Data and ErrorMessage
// is carried, selected by the outcome's Success flag.
func New(eventType command.Type, correlationID string, out command.Outcome, timestamp string) Reply {
	r := Reply{
		CorrelationID: correlationID,
		Success:       out.Success,
		Timestamp:     timestamp,
		EventType:     string(eventType),
	}
	if out.Success {
		r.Data = out.Result
	} else {
		r.ErrorMessage = out.ErrorMessage
	}
	return r
}
