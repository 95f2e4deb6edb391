package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskgen/internal/model"
	"taskgen/internal/task"
	"taskgen/internal/task/catalog"
	"taskgen/internal/task/repository"
)

// List returns the current task list in stored order.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Add appends one blank default task.
func (uc *implUseCase) Add(ctx context.Context) (task.AddOutput, error) {
	t := model.Task{
		ID:          uc.ids.Generate(),
		Name:        "New task",
		Description: "Describe this task.",
		Timeframe:   catalog.TimeframeAt(0),
		Completed:   false,
	}

	if err := uc.repo.InsertTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "uc.Add InsertTask: %v", err)
		return task.AddOutput{}, fmt.Errorf("failed to store new task: %w", err)
	}
	return task.AddOutput{Task: t}, nil
}

// Update edits a task's mutable fields; empty input fields are left as-is.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update GetTask: %v", err)
		return task.UpdateOutput{}, err
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.Timeframe != "" {
		existing.Timeframe = input.Timeframe
	}

	if err := uc.repo.UpdateTask(ctx, existing); err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: existing}, nil
}

// Delete removes a task from the list.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
