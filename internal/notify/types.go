package notify

import "taskgen/internal/model"

// Input is the data a completion notification is built from.
type Input struct {
	Task    model.Task
	Context string // Free text active at click time, may be stale vs. generation
}

// Status classifies a notification outcome.
type Status string

const (
	// StatusSuccess: the endpoint answered with a 2xx.
	StatusSuccess Status = "success"
	// StatusConfigError: no endpoint configured, no network attempt made.
	StatusConfigError Status = "config_error"
	// StatusRejected: the endpoint answered with a non-success status.
	StatusRejected Status = "rejected"
	// StatusTransportError: no response at all (DNS, refused, timeout).
	StatusTransportError Status = "transport_error"
)

// Outcome is the caller-visible result of one notification attempt.
type Outcome struct {
	Status     Status
	StatusCode int    // HTTP status, set for success and rejection
	Message    string // Human-readable detail for non-success outcomes
}

// Delivered reports whether the endpoint accepted the notification.
func (o Outcome) Delivered() bool {
	return o.Status == StatusSuccess
}

// Payload is the wire format of the outbound notification.
type Payload struct {
	Event     string     `json:"event"`
	Timestamp string     `json:"timestamp"`
	Source    string     `json:"source"`
	Version   int        `json:"version"`
	Task      model.Task `json:"task"`
	Context   string     `json:"context"`
}

// Wire constants for the notification payload.
const (
	EventTaskCompleted = "task_completed"
	PayloadSource      = "taskgen-local-app"
	PayloadVersion     = 1
)
