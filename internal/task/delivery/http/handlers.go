package http

import (
	"github.com/gin-gonic/gin"

	"taskgen/pkg/response"
)

// Generate godoc
// @Summary     Generate a task list
// @Description Derives a 3-5 step task list from a free-text activity description and replaces the current list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Activity context"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request - empty context"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the current task list in stored order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a blank task
// @Description Appends one default task to the current list.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Add(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Edit a task
// @Description Edits name, description and/or timeframe of an existing task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task id"
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} taskResp
// @Failure     404  {object} response.Resp "Task not found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task id"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"deleted": id})
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips a task's completed flag. A flip to completed fires one fire-and-forget webhook notification.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task id"
// @Param       body body toggleReq false "Free text active at click time"
// @Success     200  {object} toggleResp
// @Failure     404  {object} response.Resp "Task not found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(output))
}
