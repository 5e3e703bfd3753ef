// Package board owns the client-visible ordering of tasks: grouping
// into status columns and drag-and-drop moves with optimistic updates.
// Nothing else mutates a task's status once the board holds it.
package board

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"flowboard/internal/models"
	"flowboard/internal/services"
)

// ErrClosed is returned by Move after Close has been called.
var ErrClosed = errors.New("board is closed")

// StatusUpdater persists a move; in production this is the task
// service's remote-first UpdateStatus.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus, order int) (services.TaskResult, error)
}

type moveJob struct {
	ctx       context.Context
	taskID    string
	status    models.TaskStatus
	order     int
	oldStatus models.TaskStatus
	oldOrder  int
	done      chan moveOutcome
}

type moveOutcome struct {
	result services.TaskResult
	err    error
}

// Board holds the in-memory task list behind a mutex and pushes every
// move's persistence through a single-writer queue, so concurrent
// moves are strictly ordered by dispatch time.
type Board struct {
	mu      sync.Mutex
	tasks   []models.Task
	updater StatusUpdater

	// closeMu fences Move's enqueue against Close; a reader never
	// sends on the channel once closed is set.
	closeMu sync.RWMutex
	closed  bool

	moves chan *moveJob
	wg    sync.WaitGroup
}

func New(updater StatusUpdater) *Board {
	b := &Board{
		updater: updater,
		moves:   make(chan *moveJob, 64),
	}
	b.wg.Add(1)
	go b.writerLoop()
	return b
}

// Close stops the persistence writer after draining queued moves.
// Safe to call concurrently with Move and more than once.
func (b *Board) Close() {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.moves)
	b.wg.Wait()
}

// SetTasks replaces the board contents, typically from a list() result.
func (b *Board) SetTasks(tasks []models.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = append([]models.Task(nil), tasks...)
}

// Snapshot returns a copy of every task on the board.
func (b *Board) Snapshot() []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Task(nil), b.tasks...)
}

// TasksByStatus returns the column for a status, sorted by order.
// Safe to call on every render.
func (b *Board) TasksByStatus(status models.TaskStatus) []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	var col []models.Task
	for i := range b.tasks {
		if b.tasks[i].Status == status {
			col = append(col, b.tasks[i])
		}
	}
	sort.SliceStable(col, func(i, j int) bool { return col[i].Order < col[j].Order })
	return col
}

// Columns groups the whole board by status in column order.
func (b *Board) Columns() map[models.TaskStatus][]models.Task {
	cols := make(map[models.TaskStatus][]models.Task, len(models.TaskStatuses))
	for _, status := range models.TaskStatuses {
		cols[status] = b.TasksByStatus(status)
	}
	return cols
}

// Upsert inserts or replaces a task, keeping the board in step with
// create/update results from the domain service.
func (b *Board) Upsert(task models.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.tasks {
		if b.tasks[i].ID == task.ID {
			b.tasks[i] = task
			return
		}
	}
	b.tasks = append(b.tasks, task)
}

// Remove drops a deleted task from the board.
func (b *Board) Remove(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.tasks {
		if b.tasks[i].ID == taskID {
			b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
			return
		}
	}
}

// Move applies the move optimistically in memory, then persists it
// through the single-writer queue and waits for the outcome. An
// unknown taskID is a no-op, guarding against races with concurrent
// deletes. The returned result carries which side of the dual-source
// model persisted the move. On persistence failure the moved task
// alone is rolled back to its previous status/order and the error is
// returned; siblings shifted during the optimistic phase stay where
// they are.
func (b *Board) Move(ctx context.Context, taskID string, newStatus models.TaskStatus, newOrder int) (services.TaskResult, error) {
	b.closeMu.RLock()
	if b.closed {
		b.closeMu.RUnlock()
		return services.TaskResult{}, ErrClosed
	}

	b.mu.Lock()
	idx := b.find(taskID)
	if idx < 0 {
		b.mu.Unlock()
		b.closeMu.RUnlock()
		return services.TaskResult{}, nil
	}

	oldStatus := b.tasks[idx].Status
	oldOrder := b.tasks[idx].Order
	newOrder = b.applyMoveLocked(idx, newStatus, newOrder)
	b.mu.Unlock()

	job := &moveJob{
		ctx:       ctx,
		taskID:    taskID,
		status:    newStatus,
		order:     newOrder,
		oldStatus: oldStatus,
		oldOrder:  oldOrder,
		done:      make(chan moveOutcome, 1),
	}
	b.moves <- job
	b.closeMu.RUnlock()

	out := <-job.done
	return out.result, out.err
}

func (b *Board) writerLoop() {
	defer b.wg.Done()

	for job := range b.moves {
		result, err := b.updater.UpdateStatus(job.ctx, job.taskID, job.status, job.order)
		if err != nil {
			log.Printf("board: move of %s failed, rolling back: %v", job.taskID, err)
			b.rollback(job)
		}
		job.done <- moveOutcome{result: result, err: err}
	}
}

func (b *Board) rollback(job *moveJob) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.find(job.taskID)
	if idx < 0 {
		return
	}
	b.tasks[idx].Status = job.oldStatus
	b.tasks[idx].Order = job.oldOrder
}

func (b *Board) find(taskID string) int {
	for i := range b.tasks {
		if b.tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// applyMoveLocked mutates the board for a move and returns the clamped
// destination position. The move is remove-then-insert: the source
// column compacts over the vacated slot, destination siblings at or
// after the requested slot shift down one, then both affected columns
// renumber to contiguous 0..n-1. Compacting first keeps the requested
// position the final rendered position for downward moves within one
// column.
func (b *Board) applyMoveLocked(idx int, newStatus models.TaskStatus, newOrder int) int {
	oldStatus := b.tasks[idx].Status
	oldOrder := b.tasks[idx].Order

	for i := range b.tasks {
		if i == idx {
			continue
		}
		if b.tasks[i].Status == oldStatus && b.tasks[i].Order > oldOrder {
			b.tasks[i].Order--
		}
	}

	destSize := 0
	for i := range b.tasks {
		if i != idx && b.tasks[i].Status == newStatus {
			destSize++
		}
	}
	if newOrder < 0 {
		newOrder = 0
	}
	if newOrder > destSize {
		newOrder = destSize
	}

	for i := range b.tasks {
		if i == idx {
			continue
		}
		if b.tasks[i].Status == newStatus && b.tasks[i].Order >= newOrder {
			b.tasks[i].Order++
		}
	}
	b.tasks[idx].Status = newStatus
	b.tasks[idx].Order = newOrder

	b.renumberLocked(newStatus)
	if oldStatus != newStatus {
		b.renumberLocked(oldStatus)
	}
	return newOrder
}

func (b *Board) renumberLocked(status models.TaskStatus) {
	var col []int
	for i := range b.tasks {
		if b.tasks[i].Status == status {
			col = append(col, i)
		}
	}
	sort.SliceStable(col, func(a, c int) bool {
		return b.tasks[col[a]].Order < b.tasks[col[c]].Order
	})
	for pos, i := range col {
		b.tasks[i].Order = pos
	}
}
