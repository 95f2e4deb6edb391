package kv_test

import (
	"context"
	"errors"
	"testing"

	"taskgen/internal/model"
	"taskgen/internal/task/repository"
	"taskgen/internal/task/repository/kv"
	"taskgen/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRepo() (*kvstore.MemoryStore, repository.TaskRepository) {
	store := kvstore.NewMemoryStore()
	return store, kv.New(store, "tasks", &mockLogger{})
}

func TestReplaceAndList(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo()

	tasks := []model.Task{
		{ID: "a", Name: "Research essentials"},
		{ID: "b", Name: "Draft a plan"},
	}
	if err := repo.ReplaceTasks(ctx, tasks); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	got, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("unexpected list: %+v", got)
	}
}

func TestMalformedStoredDataTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store, repo := newRepo()

	if err := store.Set("tasks", "{{{not json"); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("malformed data must not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}

func TestInsertUpdateDelete(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo()

	if err := repo.InsertTask(ctx, model.Task{ID: "a", Name: "New Task"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := repo.UpdateTask(ctx, model.Task{ID: "a", Name: "Renamed", Timeframe: "1 hour"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, err := repo.GetTask(ctx, "a")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Renamed" || got.Timeframe != "1 hour" {
		t.Errorf("update not applied: %+v", got)
	}

	if err := repo.DeleteTask(ctx, "a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetTask(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMutationsOnMissingID(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo()

	if err := repo.UpdateTask(ctx, model.Task{ID: "ghost"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.DeleteTask(ctx, "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on delete, got %v", err)
	}
}
