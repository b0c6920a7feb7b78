package events

import "time"

const (
	ImportCompletedTopic = "opsdash.import.completed"
	ImportCompletedType  = "import_completed"
)

type ImportCompletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	BatchID    string    `json:"batch_id"`
	Total      int       `json:"total"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	OccurredAt time.Time `json:"occurred_at"`
}
