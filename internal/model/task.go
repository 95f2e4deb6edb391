package model

// Task is the central entity: one step of a generated plan.
// ID is assigned at creation and never changes; everything else is editable.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
	Completed   bool   `json:"completed"`
}
