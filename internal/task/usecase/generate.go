package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"taskgen/internal/model"
	"taskgen/internal/task"
	"taskgen/internal/task/catalog"
)

const (
	minTasks = 3
	maxTasks = 5
)

// countPattern matches a digit run followed by optional whitespace and the
// literal "task". Only the first occurrence in the context is honored and
// pluralization is not checked.
var countPattern = regexp.MustCompile(`(\d+)\s*task`)

// Generate synthesizes a task list from free text and replaces the stored
// list with it.
func (uc *implUseCase) Generate(ctx context.Context, input task.GenerateInput) (task.GenerateOutput, error) {
	if strings.TrimSpace(input.Context) == "" {
		return task.GenerateOutput{}, task.ErrEmptyContext
	}

	domain := uc.classifier.Classify(input.Context)

	// Generic plans start one position later in the timeframe cycle.
	offset := 0
	if domain == model.DomainGeneric {
		offset = 1
	}

	count := desiredCount(input.Context)

	tasks := make([]model.Task, 0, count)
	for i, role := range catalog.Roles[:count] {
		tasks = append(tasks, model.Task{
			ID:          uc.ids.Generate(),
			Name:        role.DisplayName(),
			Description: catalog.Hint(domain, role),
			Timeframe:   catalog.TimeframeAt(i + offset),
			Completed:   false,
		})
	}

	if err := uc.repo.ReplaceTasks(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Generate ReplaceTasks: %v", err)
		return task.GenerateOutput{}, fmt.Errorf("failed to store generated tasks: %w", err)
	}

	uc.l.Infof(ctx, "Generate: domain=%s count=%d context_length=%d", domain, count, len(input.Context))

	return task.GenerateOutput{
		Domain: domain,
		Tasks:  tasks,
	}, nil
}

// desiredCount extracts the requested task count from the context, clamped
// into [minTasks, maxTasks]. No request means the full role list.
func desiredCount(context string) int {
	m := countPattern.FindStringSubmatch(context)
	if m == nil {
		return maxTasks
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit run too long for an int; treat as a large request.
		return maxTasks
	}

	if n < minTasks {
		return minTasks
	}
	if n > maxTasks {
		return maxTasks
	}
	return n
}
