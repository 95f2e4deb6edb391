package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"taskgen/internal/model"
	"taskgen/internal/task/repository"
)

// load reads and decodes the stored list. Absent or malformed data degrades
// to an empty list instead of failing.
func (r *implRepository) load(ctx context.Context) []model.Task {
	raw, ok, err := r.store.Get(r.key)
	if err != nil {
		r.l.Warnf(ctx, "kv.load: store read failed, treating as empty: %v", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		r.l.Warnf(ctx, "kv.load: malformed stored task list, treating as empty: %v", err)
		return nil
	}
	return tasks
}

// save serializes and writes the whole list.
func (r *implRepository) save(tasks []model.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal task list: %w", err)
	}
	if err := r.store.Set(r.key, string(raw)); err != nil {
		return fmt.Errorf("failed to persist task list: %w", err)
	}
	return nil
}

// ListTasks returns the current task list in stored order.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx), nil
}

// GetTask returns one task by id.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.load(ctx) {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

// ReplaceTasks overwrites the whole stored list.
func (r *implRepository) ReplaceTasks(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(tasks)
}

// InsertTask appends one task to the list.
func (r *implRepository) InsertTask(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := append(r.load(ctx), t)
	return r.save(tasks)
}

// UpdateTask replaces the stored task with the same id.
func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.load(ctx)
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = t
			return r.save(tasks)
		}
	}
	return repository.ErrNotFound
}

// DeleteTask removes the task with the given id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.load(ctx)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return r.save(tasks)
		}
	}
	return repository.ErrNotFound
}
