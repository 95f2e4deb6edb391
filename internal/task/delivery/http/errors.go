package http

import (
	"net/http"

	"taskgen/internal/task"
	pkgErrors "taskgen/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyContext:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "context text is empty")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
