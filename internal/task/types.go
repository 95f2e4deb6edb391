package task

import "taskgen/internal/model"

// GenerateInput is the input for task list generation.
type GenerateInput struct {
	Context string // Free-text activity description from the user
}

// GenerateOutput is the result of task list generation.
type GenerateOutput struct {
	Domain model.Domain
	Tasks  []model.Task
}

// ListOutput is the current task list.
type ListOutput struct {
	Tasks []model.Task
}

// AddOutput carries the freshly appended blank task.
type AddOutput struct {
	Task model.Task
}

// UpdateInput edits a task's mutable fields. Empty fields are left
// unchanged.
type UpdateInput struct {
	ID          string
	Name        string
	Description string
	Timeframe   string
}

// UpdateOutput carries the task after the edit.
type UpdateOutput struct {
	Task model.Task
}

// ToggleInput flips completion for one task. Context is whatever free text
// is active in the input field at click time; it rides along into the
// completion notification unchanged.
type ToggleInput struct {
	ID      string
	Context string
}

// ToggleOutput is the result of a completion toggle.
type ToggleOutput struct {
	Task model.Task
	// NotificationQueued reports that a completion notification was handed
	// to the notifier. Delivery is fire-and-forget and not guaranteed.
	NotificationQueued bool
}
