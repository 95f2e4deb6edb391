package usecase

import (
	"context"
	"errors"
	"testing"

	"taskgen/internal/model"
	"taskgen/internal/task"
	"taskgen/internal/task/catalog"
	"taskgen/internal/task/classify"
	"taskgen/internal/task/repository/kv"
	"taskgen/pkg/identifier"
	"taskgen/pkg/kvstore"
)

func newTestUseCase() (*implUseCase, *mockNotifier) {
	notifier := &mockNotifier{}
	repo := kv.New(kvstore.NewMemoryStore(), "tasks", &mockLogger{})
	uc := New(&mockLogger{}, repo, classify.New(16), identifier.New(), notifier)
	return uc, notifier
}

func TestGenerateExamWithRequestedCount(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.Generate(context.Background(), task.GenerateInput{
		Context: "I need to prepare for an exam, make 4 tasks",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Domain != model.DomainExam {
		t.Errorf("domain = %s, want exam", out.Domain)
	}
	if len(out.Tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(out.Tasks))
	}

	wantNames := []string{
		"Research essentials",
		"Draft a plan",
		"List resources & tools",
		"Execute first milestone",
	}
	for i, tk := range out.Tasks {
		if tk.Name != wantNames[i] {
			t.Errorf("task %d name = %q, want %q", i, tk.Name, wantNames[i])
		}
		if tk.Description != catalog.Hint(model.DomainExam, catalog.Roles[i]) {
			t.Errorf("task %d should carry the exam hint, got %q", i, tk.Description)
		}
		// Domain-specific plans take timeframes from the start of the cycle.
		if tk.Timeframe != catalog.TimeframeAt(i) {
			t.Errorf("task %d timeframe = %q, want %q", i, tk.Timeframe, catalog.TimeframeAt(i))
		}
		if tk.Completed {
			t.Errorf("task %d must start incomplete", i)
		}
		if tk.ID == "" {
			t.Errorf("task %d missing id", i)
		}
	}
}

func TestGenerateGenericAppliesTimeframeOffset(t *testing.T) {
	uc, _ := newTestUseCase()

	// Requested 1 is clamped up to 3; generic plans start one timeframe
	// position later.
	out, err := uc.Generate(context.Background(), task.GenerateInput{
		Context: "random babble, 1 task",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Domain != model.DomainGeneric {
		t.Errorf("domain = %s, want generic", out.Domain)
	}
	if len(out.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(out.Tasks))
	}
	for i, tk := range out.Tasks {
		if tk.Timeframe != catalog.TimeframeAt(i+1) {
			t.Errorf("task %d timeframe = %q, want %q", i, tk.Timeframe, catalog.TimeframeAt(i+1))
		}
	}
}

func TestGenerateCountParsing(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    int
	}{
		{"no count requested", "plan a trip", 5},
		{"clamped up", "plan a trip, 0 tasks", 3},
		{"clamped down", "plan a trip, 10 tasks", 5},
		{"exact", "plan a trip, 4 tasks", 4},
		{"first occurrence wins", "plan a trip, 4 tasks not 9 tasks", 4},
		{"no space before task", "plan a trip, 3tasks", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase()
			out, err := uc.Generate(context.Background(), task.GenerateInput{Context: tt.context})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Tasks) != tt.want {
				t.Errorf("got %d tasks, want %d", len(out.Tasks), tt.want)
			}
		})
	}
}

func TestGenerateEmptyContextRefused(t *testing.T) {
	uc, _ := newTestUseCase()

	// Seed an existing list, then check refusal leaves it untouched.
	if _, err := uc.Generate(context.Background(), task.GenerateInput{Context: "gym plan"}); err != nil {
		t.Fatal(err)
	}
	before, _ := uc.List(context.Background())

	for _, ctxText := range []string{"", "   ", "\t\n"} {
		if _, err := uc.Generate(context.Background(), task.GenerateInput{Context: ctxText}); !errors.Is(err, task.ErrEmptyContext) {
			t.Errorf("Generate(%q): expected ErrEmptyContext, got %v", ctxText, err)
		}
	}

	after, _ := uc.List(context.Background())
	if len(after.Tasks) != len(before.Tasks) {
		t.Error("refused generation must not mutate the stored list")
	}
}

func TestGenerateReplacesWholeList(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	first, err := uc.Generate(ctx, task.GenerateInput{Context: "book a flight"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.Generate(ctx, task.GenerateInput{Context: "start at the gym, 3 tasks"})
	if err != nil {
		t.Fatal(err)
	}

	stored, _ := uc.List(ctx)
	if len(stored.Tasks) != len(second.Tasks) {
		t.Fatalf("expected %d stored tasks, got %d", len(second.Tasks), len(stored.Tasks))
	}
	for _, tk := range stored.Tasks {
		for _, old := range first.Tasks {
			if tk.ID == old.ID {
				t.Errorf("old task %s survived regeneration", tk.ID)
			}
		}
	}
}

func TestGenerateIDsAreUnique(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.Generate(context.Background(), task.GenerateInput{Context: "pc build"})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for _, tk := range out.Tasks {
		if seen[tk.ID] {
			t.Errorf("duplicate id %s in generated list", tk.ID)
		}
		seen[tk.ID] = true
	}
}
