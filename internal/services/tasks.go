package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"flowboard/internal/cachestore"
	"flowboard/internal/gateway"
	"flowboard/internal/models"
)

// TaskGateway is the slice of the remote gateway the task service
// needs; tests substitute a fake.
type TaskGateway interface {
	ListTasks(ctx context.Context, filter gateway.TaskFilter) ([]models.Task, error)
	CreateTask(ctx context.Context, draft models.TaskDraft) (models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, order int) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type TaskService struct {
	gw       TaskGateway
	store    *cachestore.Store
	breaker  *Breaker
	validate *validator.Validate
}

func NewTaskService(gw TaskGateway, store *cachestore.Store, breaker *Breaker) *TaskService {
	return &TaskService{
		gw:       gw,
		store:    store,
		breaker:  breaker,
		validate: validator.New(),
	}
}

// List serves the remote task list, or the full cache snapshot when the
// remote path fails. It never merges the two sources, so one failed
// sync cannot produce duplicates or orphans.
func (s *TaskService) List(ctx context.Context, filter gateway.TaskFilter) (TaskListResult, error) {
	var remote []models.Task
	err := s.breaker.Execute(func() error {
		var listErr error
		remote, listErr = s.gw.ListTasks(ctx, filter)
		return listErr
	})
	if err == nil {
		return TaskListResult{Tasks: remote, Source: SourceRemote}, nil
	}
	log.Printf("tasks: remote list failed, serving cache snapshot: %v", err)

	tasks := filterTasks(s.store.Tasks(), filter)
	return TaskListResult{Tasks: tasks, Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

// Create validates the draft, then creates the task remotely or, when
// the remote fails, mints a local id and appends the task to the end of
// its status column in the cache.
func (s *TaskService) Create(ctx context.Context, draft models.TaskDraft) (TaskResult, error) {
	if draft.Status == "" {
		draft.Status = models.StatusBacklog
	}
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}
	if err := s.validate.Struct(draft); err != nil {
		return TaskResult{}, fmt.Errorf("invalid task draft: %w", err)
	}

	var created models.Task
	err := s.breaker.Execute(func() error {
		var createErr error
		created, createErr = s.gw.CreateTask(ctx, draft)
		return createErr
	})
	if err == nil {
		return TaskResult{Task: created, Source: SourceRemote}, nil
	}
	log.Printf("tasks: remote create failed, writing to cache: %v", err)

	now := time.Now().UTC()
	task := models.Task{
		ID:          mintID("task"),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		ProjectID:   draft.ProjectID,
		ProjectName: draft.ProjectName,
		Assignee:    draft.Assignee,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks := s.store.Tasks()
	task.Order = columnSize(tasks, task.Status)
	tasks = append(tasks, task)
	s.store.SaveTasks(tasks)

	return TaskResult{Task: task, Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

// Update applies a partial update remotely, or against the cached copy
// of the task when the remote fails.
func (s *TaskService) Update(ctx context.Context, id string, patch models.TaskPatch) (TaskResult, error) {
	var updated models.Task
	err := s.breaker.Execute(func() error {
		var updateErr error
		updated, updateErr = s.gw.UpdateTask(ctx, id, patch)
		return updateErr
	})
	if err == nil {
		return TaskResult{Task: updated, Source: SourceRemote}, nil
	}
	log.Printf("tasks: remote update failed, mutating cache: %v", err)

	tasks := s.store.Tasks()
	idx := findTask(tasks, id)
	if idx < 0 {
		return TaskResult{}, fmt.Errorf("task %s not in local cache after remote failure: %w", id, err)
	}
	patch.Apply(&tasks[idx])
	s.store.SaveTasks(tasks)

	return TaskResult{Task: tasks[idx], Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

// UpdateStatus is the persistence half of a board move: PATCH the
// status/order remotely, or replay the move against the cache with the
// same sibling renumbering the board applies.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status models.TaskStatus, order int) (TaskResult, error) {
	var updated models.Task
	err := s.breaker.Execute(func() error {
		var updateErr error
		updated, updateErr = s.gw.UpdateTaskStatus(ctx, id, status, order)
		return updateErr
	})
	if err == nil {
		return TaskResult{Task: updated, Source: SourceRemote}, nil
	}
	log.Printf("tasks: remote status update failed, mutating cache: %v", err)

	tasks := s.store.Tasks()
	idx := findTask(tasks, id)
	if idx < 0 {
		return TaskResult{}, fmt.Errorf("task %s not in local cache after remote failure: %w", id, err)
	}
	applyMove(tasks, idx, status, order)
	tasks[idx].UpdatedAt = time.Now().UTC()
	s.store.SaveTasks(tasks)

	return TaskResult{Task: tasks[idx], Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

// Delete removes the task remotely, or drops it from the cache when
// the remote fails.
func (s *TaskService) Delete(ctx context.Context, id string) (Result, error) {
	err := s.breaker.Execute(func() error {
		return s.gw.DeleteTask(ctx, id)
	})
	if err == nil {
		return Result{Source: SourceRemote}, nil
	}
	log.Printf("tasks: remote delete failed, dropping from cache: %v", err)

	tasks := s.store.Tasks()
	idx := findTask(tasks, id)
	if idx < 0 {
		return Result{}, fmt.Errorf("task %s not in local cache after remote failure: %w", id, err)
	}
	tasks = append(tasks[:idx], tasks[idx+1:]...)
	s.store.SaveTasks(tasks)

	return Result{Source: SourceLocal, Warning: fallbackWarning(err)}, nil
}

func filterTasks(tasks []models.Task, filter gateway.TaskFilter) []models.Task {
	out := tasks[:0:0]
	for _, t := range tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.AssigneeID != "" && (t.Assignee == nil || t.Assignee.ID != filter.AssigneeID) {
			continue
		}
		out = append(out, t)
	}
	return out
}
