package usecase

import (
	"context"
	"errors"

	"taskgen/internal/notify"
	"taskgen/internal/task"
	"taskgen/internal/task/repository"
)

// Toggle flips a task's completion state. A flip that lands on completed
// fires one fire-and-forget notification; the HTTP caller never waits on
// the endpoint.
func (uc *implUseCase) Toggle(ctx context.Context, input task.ToggleInput) (task.ToggleOutput, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ToggleOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Toggle GetTask: %v", err)
		return task.ToggleOutput{}, err
	}

	existing.Completed = !existing.Completed
	if err := uc.repo.UpdateTask(ctx, existing); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleOutput{}, err
	}

	out := task.ToggleOutput{Task: existing}

	if existing.Completed {
		ch := uc.notifier.NotifyCompletionAsync(ctx, notify.Input{
			Task:    existing,
			Context: input.Context,
		})
		out.NotificationQueued = true

		// Drain the outcome in the background so failures leave a trace.
		go uc.logOutcome(ctx, existing.ID, ch)
	}

	return out, nil
}

func (uc *implUseCase) logOutcome(ctx context.Context, taskID string, ch <-chan notify.Outcome) {
	outcome, ok := <-ch
	if !ok {
		return
	}
	switch outcome.Status {
	case notify.StatusSuccess:
		uc.l.Infof(ctx, "Toggle: notification for task %s delivered", taskID)
	case notify.StatusConfigError:
		uc.l.Warnf(ctx, "Toggle: notification for task %s skipped: %s", taskID, outcome.Message)
	default:
		uc.l.Warnf(ctx, "Toggle: notification for task %s failed (%s): %s",
			taskID, outcome.Status, outcome.Message)
	}
}
