package kv

import (
	"sync"

	"taskgen/internal/task/repository"
	"taskgen/pkg/kvstore"
	pkgLog "taskgen/pkg/log"
)

// implRepository persists the task list as serialized JSON under a single
// key of a kvstore.Store.
type implRepository struct {
	mu    sync.Mutex
	store kvstore.Store
	key   string
	l     pkgLog.Logger
}

// New creates a task repository over the given key-value store.
func New(store kvstore.Store, key string, l pkgLog.Logger) *implRepository {
	return &implRepository{
		store: store,
		key:   key,
		l:     l,
	}
}

var _ repository.TaskRepository = (*implRepository)(nil)
