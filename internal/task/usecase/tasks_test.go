package usecase

import (
	"context"
	"errors"
	"testing"

	"taskgen/internal/task"
)

func TestAddAppendsDefaultTask(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	if _, err := uc.Generate(ctx, task.GenerateInput{Context: "trip planning, 3 tasks"}); err != nil {
		t.Fatal(err)
	}

	out, err := uc.Add(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.ID == "" || out.Task.Name != "New task" || out.Task.Completed {
		t.Errorf("unexpected default task: %+v", out.Task)
	}

	list, _ := uc.List(ctx)
	if len(list.Tasks) != 4 {
		t.Fatalf("expected 4 tasks after add, got %d", len(list.Tasks))
	}
	if list.Tasks[3].ID != out.Task.ID {
		t.Error("added task must be appended at the end")
	}
}

func TestUpdateEditsMutableFields(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	gen, err := uc.Generate(ctx, task.GenerateInput{Context: "exam prep"})
	if err != nil {
		t.Fatal(err)
	}
	target := gen.Tasks[0]

	out, err := uc.Update(ctx, task.UpdateInput{
		ID:        target.ID,
		Name:      "Skim old exams",
		Timeframe: "Half day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Task.ID != target.ID {
		t.Error("id must never change on update")
	}
	if out.Task.Name != "Skim old exams" || out.Task.Timeframe != "Half day" {
		t.Errorf("edit not applied: %+v", out.Task)
	}
	// Empty field left unchanged
	if out.Task.Description != target.Description {
		t.Errorf("description should be unchanged, got %q", out.Task.Description)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Update(context.Background(), task.UpdateInput{ID: "ghost", Name: "x"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	gen, err := uc.Generate(ctx, task.GenerateInput{Context: "gym, 3 tasks"})
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.Delete(ctx, gen.Tasks[1].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, _ := uc.List(ctx)
	if len(list.Tasks) != 2 {
		t.Errorf("expected 2 tasks after delete, got %d", len(list.Tasks))
	}

	if err := uc.Delete(ctx, "ghost"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestToggleFiresNotificationOnCompletion(t *testing.T) {
	uc, notifier := newTestUseCase()
	ctx := context.Background()

	gen, err := uc.Generate(ctx, task.GenerateInput{Context: "exam prep, 3 tasks"})
	if err != nil {
		t.Fatal(err)
	}
	target := gen.Tasks[0]

	out, err := uc.Toggle(ctx, task.ToggleInput{ID: target.ID, Context: "edited context text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Task.Completed {
		t.Error("expected task flipped to completed")
	}
	if !out.NotificationQueued {
		t.Error("expected notification queued on completion")
	}

	inputs := notifier.recorded()
	if len(inputs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(inputs))
	}
	if inputs[0].Task.ID != target.ID || !inputs[0].Task.Completed {
		t.Errorf("unexpected notification task: %+v", inputs[0].Task)
	}
	// The free text at click time rides along, even when it differs from the
	// text that generated the list.
	if inputs[0].Context != "edited context text" {
		t.Errorf("notification context = %q", inputs[0].Context)
	}
}

func TestToggleBackDoesNotNotify(t *testing.T) {
	uc, notifier := newTestUseCase()
	ctx := context.Background()

	gen, err := uc.Generate(ctx, task.GenerateInput{Context: "exam prep, 3 tasks"})
	if err != nil {
		t.Fatal(err)
	}
	target := gen.Tasks[0]

	if _, err := uc.Toggle(ctx, task.ToggleInput{ID: target.ID}); err != nil {
		t.Fatal(err)
	}
	out, err := uc.Toggle(ctx, task.ToggleInput{ID: target.ID})
	if err != nil {
		t.Fatal(err)
	}

	if out.Task.Completed {
		t.Error("expected task flipped back to incomplete")
	}
	if out.NotificationQueued {
		t.Error("un-completing must not queue a notification")
	}
	if got := len(notifier.recorded()); got != 1 {
		t.Errorf("expected exactly 1 notification overall, got %d", got)
	}
}

func TestToggleUnknownID(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Toggle(context.Background(), task.ToggleInput{ID: "ghost"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
