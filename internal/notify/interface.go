package notify

import "context"

// UseCase defines the completion notification interface.
type UseCase interface {
	// NotifyCompletion builds the payload and performs exactly one outbound
	// POST. Failure is a value, not an error: every path yields an Outcome.
	NotifyCompletion(ctx context.Context, input Input) Outcome

	// NotifyCompletionAsync runs NotifyCompletion in the background and
	// delivers the outcome on the returned channel (buffered, never blocks
	// the sender). Callers may detach without draining it.
	NotifyCompletionAsync(ctx context.Context, input Input) <-chan Outcome
}
