package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskgen/pkg/kvstore"
	"taskgen/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	store               kvstore.Store
	storeKey            string
	classifierCacheSize int
	rateLimitPerMin     int

	// Completion notifications
	webhookURL string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Task domain
	Store               kvstore.Store
	StoreKey            string
	ClassifierCacheSize int
	RateLimitPerMin     int

	// Completion notifications
	WebhookURL string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		store:               cfg.Store,
		storeKey:            cfg.StoreKey,
		classifierCacheSize: cfg.ClassifierCacheSize,
		rateLimitPerMin:     cfg.RateLimitPerMin,
		webhookURL:          cfg.WebhookURL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("task store is required")
	}
	if srv.storeKey == "" {
		return errors.New("task store key is required")
	}
	return nil
}
