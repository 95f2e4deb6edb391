package http

import (
	"github.com/gin-gonic/gin"

	"taskgen/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Generation
// is rate limited; plain list/edit operations are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/generate", mw.RateLimit(), h.Generate)
		tasks.GET("", h.List)
		tasks.POST("", h.Add)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
	}
}
