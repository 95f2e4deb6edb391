package http

import (
	"taskgen/internal/model"
	"taskgen/internal/task"
)

// --- Request DTOs ---

type generateReq struct {
	Context string `json:"context" binding:"required"`
}

func (r generateReq) toInput() task.GenerateInput {
	return task.GenerateInput{Context: r.Context}
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Name        string `json:"name"        binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Timeframe   string `json:"timeframe"   binding:"omitempty,max=64"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Timeframe:   r.Timeframe,
	}
}

type toggleReq struct {
	ID      string `json:"-"` // populated from URI param
	Context string `json:"context"`
}

func (r toggleReq) toInput() task.ToggleInput {
	return task.ToggleInput{
		ID:      r.ID,
		Context: r.Context,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
	Completed   bool   `json:"completed"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Timeframe:   t.Timeframe,
		Completed:   t.Completed,
	}
}

type generateResp struct {
	Domain string     `json:"domain"`
	Tasks  []taskResp `json:"tasks"`
}

func (h *handler) newGenerateResp(out task.GenerateOutput) generateResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return generateResp{
		Domain: string(out.Domain),
		Tasks:  tasks,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks: tasks,
		Total: len(tasks),
	}
}

type toggleResp struct {
	Task taskResp `json:"task"`
	// Notification is "queued" when a completion webhook was handed off,
	// "skipped" otherwise. Delivery itself is fire-and-forget.
	Notification string `json:"notification"`
}

func (h *handler) newToggleResp(out task.ToggleOutput) toggleResp {
	notification := "skipped"
	if out.NotificationQueued {
		notification = "queued"
	}
	return toggleResp{
		Task:         newTaskResp(out.Task),
		Notification: notification,
	}
}
