package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyContext = errors.New("context text is empty")
	ErrTaskNotFound = errors.New("task not found")
)
