package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskgen/internal/middleware"
	notifyUC "taskgen/internal/notify/usecase"
	"taskgen/internal/task/classify"
	taskHTTP "taskgen/internal/task/delivery/http"
	taskRepo "taskgen/internal/task/repository/kv"
	taskUC "taskgen/internal/task/usecase"
	"taskgen/pkg/identifier"
	"taskgen/pkg/webhook"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.store, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.store, srv.storeKey, srv.l)

	// 2. UseCases
	notifier := notifyUC.New(srv.l, webhook.NewClient(), srv.webhookURL)
	uc := taskUC.New(srv.l, repo, classify.New(srv.classifierCacheSize), identifier.New(), notifier)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	if srv.webhookURL == "" {
		srv.l.Warnf(ctx, "no webhook url configured, completion notifications will be skipped")
	}
	srv.l.Infof(ctx, "task domain registered")
	return nil
}
