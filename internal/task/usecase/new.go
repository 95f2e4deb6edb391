package usecase

import (
	"taskgen/internal/notify"
	"taskgen/internal/task/classify"
	"taskgen/internal/task/repository"
	"taskgen/pkg/identifier"
	pkgLog "taskgen/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	classifier *classify.Classifier
	ids        *identifier.Generator
	notifier   notify.UseCase
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	classifier *classify.Classifier,
	ids *identifier.Generator,
	notifier notify.UseCase,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		classifier: classifier,
		ids:        ids,
		notifier:   notifier,
	}
}
