package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Generate synthesizes a new task list from free text and replaces the
	// stored list with it.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// List returns the current task list in stored order.
	List(ctx context.Context) (ListOutput, error)

	// Add appends one blank default task to the list.
	Add(ctx context.Context) (AddOutput, error)

	// Update edits the mutable fields of an existing task.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes a task from the list.
	Delete(ctx context.Context, id string) error

	// Toggle flips a task's completion state. A flip to completed fires one
	// detached completion notification if an endpoint is configured.
	Toggle(ctx context.Context, input ToggleInput) (ToggleOutput, error)
}
