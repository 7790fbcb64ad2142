package domain

// StreamEventType tags the messages sent to a streaming client.
type StreamEventType string

const (
	// StreamEventStatus reports a pass changing its lifecycle state.
	StreamEventStatus StreamEventType = "status"
	// StreamEventColumn carries one finished screen column.
	StreamEventColumn StreamEventType = "column"
	// StreamEventError reports a rejected parameter record or a failed pass.
	StreamEventError StreamEventType = "error"
)

// StreamEvent is one message of a streaming session.
// Pass numbers the parameter records the session accepted, starting at 1.
type StreamEvent struct {
	Type    StreamEventType `json:"type"`
	Pass    uint64          `json:"pass"`
	Column  int             `json:"column"`
	Values  []float64       `json:"values,omitempty"`
	Status  PassStatus      `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
}
