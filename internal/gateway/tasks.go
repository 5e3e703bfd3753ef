package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"

	"flowboard/internal/models"
)

// TaskFilter narrows GET /tasks. Zero-valued fields are omitted.
type TaskFilter struct {
	Status     models.TaskStatus
	Priority   models.TaskPriority
	ProjectID  string
	AssigneeID string
}

type taskQuery struct {
	Status     string `url:"status,omitempty"`
	Priority   string `url:"priority,omitempty"`
	ProjectID  string `url:"project_id,omitempty"`
	AssigneeID string `url:"assignee_id,omitempty"`
}

func (f TaskFilter) values() (url.Values, error) {
	q := taskQuery{
		ProjectID:  f.ProjectID,
		AssigneeID: f.AssigneeID,
	}
	if f.Status != "" {
		q.Status = statusToWire(f.Status)
	}
	if f.Priority != "" {
		q.Priority = priorityToWire(f.Priority)
	}
	v, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task filter: %w", err)
	}
	return v, nil
}

func (c *Client) ListTasks(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	q, err := filter.values()
	if err != nil {
		return nil, err
	}
	var out []wireTask
	if err := c.do(ctx, http.MethodGet, "/tasks", q, nil, &out); err != nil {
		return nil, err
	}
	return tasksFromWire(out), nil
}

func (c *Client) CreateTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	var out wireTask
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, taskDraftToWire(draft), &out); err != nil {
		return models.Task{}, err
	}
	return taskFromWire(out), nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	body := patchToWire(patch)
	var out wireTask
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, nil, body, &out); err != nil {
		return models.Task{}, err
	}
	return taskFromWire(out), nil
}

func (c *Client) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, order int) (models.Task, error) {
	body := map[string]interface{}{
		"status": statusToWire(status),
		"order":  order,
	}
	var out wireTask
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id+"/status", nil, body, &out); err != nil {
		return models.Task{}, err
	}
	return taskFromWire(out), nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, nil)
}

// patchToWire keeps PUT /tasks/{id} partial: only set fields appear in
// the body.
func patchToWire(p models.TaskPatch) map[string]interface{} {
	body := make(map[string]interface{})
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.Description != nil {
		body["description"] = *p.Description
	}
	if p.Status != nil {
		body["status"] = statusToWire(*p.Status)
	}
	if p.Priority != nil {
		body["priority"] = priorityToWire(*p.Priority)
	}
	if p.ProjectID != nil {
		body["project_id"] = *p.ProjectID
	}
	if p.ProjectName != nil {
		body["project_name"] = *p.ProjectName
	}
	if p.Assignee != nil {
		body["assignee"] = assigneeToWire(p.Assignee)
	}
	if p.DueDate != nil {
		body["due_date"] = *p.DueDate
	}
	return body
}
