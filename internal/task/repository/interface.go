package repository

import (
	"context"

	"taskgen/internal/model"
)

// TaskRepository defines all data access methods for the task list. The
// list is stored as one ordered unit; mutations rewrite it wholesale.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ReplaceTasks(ctx context.Context, tasks []model.Task) error
	InsertTask(ctx context.Context, t model.Task) error
	UpdateTask(ctx context.Context, t model.Task) error
	DeleteTask(ctx context.Context, id string) error
}
