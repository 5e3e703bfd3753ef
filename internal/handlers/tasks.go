package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"flowboard/internal/board"
	"flowboard/internal/gateway"
	"flowboard/internal/models"
	"flowboard/internal/services"
)

// sourceHeader tells the UI which side of the dual-source model
// produced a response, so it can surface offline state.
const sourceHeader = "X-Data-Source"

// TaskAPI is the slice of the task service the handlers need.
type TaskAPI interface {
	List(ctx context.Context, filter gateway.TaskFilter) (services.TaskListResult, error)
	Create(ctx context.Context, draft models.TaskDraft) (services.TaskResult, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) (services.TaskResult, error)
	Delete(ctx context.Context, id string) (services.Result, error)
}

type TaskHandler struct {
	tasks TaskAPI
	board *board.Board
}

func NewTaskHandler(tasks TaskAPI, b *board.Board) *TaskHandler {
	return &TaskHandler{tasks: tasks, board: b}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	filter := gateway.TaskFilter{
		Status:     models.TaskStatus(c.Query("status")),
		Priority:   models.TaskPriority(c.Query("priority")),
		ProjectID:  c.Query("project_id"),
		AssigneeID: c.Query("assignee_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority filter"})
		return
	}

	result, err := h.tasks.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var draft models.TaskDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.tasks.Create(c.Request.Context(), draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.board.Upsert(result.Task)

	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusCreated, result)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority"})
		return
	}

	result, err := h.tasks.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.board.Upsert(result.Task)

	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result)
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	var input struct {
		Status models.TaskStatus `json:"status" binding:"required"`
		Order  *int              `json:"order" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	if *input.Order < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be non-negative"})
		return
	}

	result, err := h.board.Move(c.Request.Context(), c.Param("id"), input.Status, *input.Order)
	if err != nil {
		// The optimistic move has already been rolled back; tell the
		// UI so it can show a failure toast and re-render.
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to move task", "details": err.Error()})
		return
	}

	resp := gin.H{"message": "task moved"}
	if result.Source != "" {
		c.Header(sourceHeader, string(result.Source))
		resp["source"] = result.Source
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	result, err := h.tasks.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	h.board.Remove(c.Param("id"))

	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result)
}

// GetBoard returns the in-memory board grouped into status columns.
func (h *TaskHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"columns": h.board.Columns()})
}

func respondServiceError(c *gin.Context, err error) {
	if apiErr, ok := gateway.AsAPIError(err); ok {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
