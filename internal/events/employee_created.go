package events

import "time"

const (
	EmployeeCreatedTopic = "opsdash.employee.created"
	EmployeeCreatedType  = "employee_created"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
