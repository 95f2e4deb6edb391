package usecase

import (
	"context"
	"time"

	"taskgen/internal/notify"
)

// NotifyCompletion builds the task_completed payload and performs exactly
// one outbound POST. No retries, no queuing; the transport's default
// timeout applies.
func (uc *implUseCase) NotifyCompletion(ctx context.Context, input notify.Input) notify.Outcome {
	if uc.destination == "" {
		uc.l.Warnf(ctx, "NotifyCompletion: skipped, %s", notify.MsgNoEndpoint)
		return notify.Outcome{
			Status:  notify.StatusConfigError,
			Message: notify.MsgNoEndpoint,
		}
	}

	snapshot := input.Task
	snapshot.Completed = true

	payload := notify.Payload{
		Event:     notify.EventTaskCompleted,
		Timestamp: uc.now().UTC().Format(time.RFC3339),
		Source:    notify.PayloadSource,
		Version:   notify.PayloadVersion,
		Task:      snapshot,
		Context:   input.Context,
	}

	resp, err := uc.poster.Post(ctx, uc.destination, payload)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = notify.MsgTransportFailure
		}
		uc.l.Errorf(ctx, "NotifyCompletion: transport failure for task %s: %v", input.Task.ID, err)
		return notify.Outcome{
			Status:  notify.StatusTransportError,
			Message: msg,
		}
	}

	if !resp.OK() {
		// Response body is diagnostic only.
		uc.l.Warnf(ctx, "NotifyCompletion: endpoint rejected task %s: %s body=%s",
			input.Task.ID, resp.Status, string(resp.Body))
		return notify.Outcome{
			Status:     notify.StatusRejected,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	uc.l.Infof(ctx, "NotifyCompletion: delivered task %s (%d)", input.Task.ID, resp.StatusCode)
	return notify.Outcome{
		Status:     notify.StatusSuccess,
		StatusCode: resp.StatusCode,
	}
}

// NotifyCompletionAsync fires NotifyCompletion in the background. The
// request is detached from the caller's context so an early HTTP return
// does not cancel it mid-flight.
func (uc *implUseCase) NotifyCompletionAsync(ctx context.Context, input notify.Input) <-chan notify.Outcome {
	out := make(chan notify.Outcome, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		out <- uc.NotifyCompletion(detached, input)
		close(out)
	}()

	return out
}
