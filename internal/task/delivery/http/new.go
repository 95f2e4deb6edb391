package http

import (
	"github.com/gin-gonic/gin"

	"taskgen/internal/task"
	pkgLog "taskgen/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	List(c *gin.Context)
	Add(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Toggle(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
