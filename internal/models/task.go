package models

import "time"

type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses lists every status in board-column order.
var TaskStatuses = []TaskStatus{StatusBacklog, StatusInProgress, StatusReview, StatusDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusBacklog, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Assignee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Task is the domain shape of a board item. Order is the position key
// within the task's status column; the board keeps orders contiguous
// (0..n-1) per column after every move.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	ProjectID   string       `json:"projectId,omitempty"`
	ProjectName string       `json:"projectName,omitempty"`
	Assignee    *Assignee    `json:"assignee,omitempty"`
	DueDate     string       `json:"dueDate,omitempty"`
	Order       int          `json:"order"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TaskDraft is the caller-supplied shape for creating a task.
type TaskDraft struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" validate:"omitempty,oneof=backlog in-progress review done"`
	Priority    TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ProjectID   string       `json:"projectId"`
	ProjectName string       `json:"projectName"`
	Assignee    *Assignee    `json:"assignee"`
	DueDate     string       `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// TaskPatch carries a partial update; nil fields are left untouched.
type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	ProjectID   *string       `json:"projectId,omitempty"`
	ProjectName *string       `json:"projectName,omitempty"`
	Assignee    *Assignee     `json:"assignee,omitempty"`
	DueDate     *string       `json:"dueDate,omitempty"`
}

// Apply copies the set fields of the patch onto t and bumps UpdatedAt.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ProjectID != nil {
		t.ProjectID = *p.ProjectID
	}
	if p.ProjectName != nil {
		t.ProjectName = *p.ProjectName
	}
	if p.Assignee != nil {
		t.Assignee = p.Assignee
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	t.UpdatedAt = time.Now().UTC()
}
