package board

import (
	"context"
	"errors"
	"sync"
	"testing"

	"flowboard/internal/models"
	"flowboard/internal/services"
)

type recordedMove struct {
	taskID string
	status models.TaskStatus
	order  int
}

type fakeUpdater struct {
	mu      sync.Mutex
	fail    bool
	source  services.Source
	warning string
	moves   []recordedMove
}

func (f *fakeUpdater) UpdateStatus(ctx context.Context, id string, status models.TaskStatus, order int) (services.TaskResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return services.TaskResult{}, errors.New("persist failed")
	}
	f.moves = append(f.moves, recordedMove{taskID: id, status: status, order: order})
	return services.TaskResult{Source: f.source, Warning: f.warning}, nil
}

func (f *fakeUpdater) recorded() []recordedMove {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedMove(nil), f.moves...)
}

func boardTasks() []models.Task {
	return []models.Task{
		{ID: "task-a", Status: models.StatusReview, Order: 0},
		{ID: "task-b", Status: models.StatusReview, Order: 1},
		{ID: "task-c", Status: models.StatusBacklog, Order: 0},
	}
}

func newTestBoard(t *testing.T, fail bool) (*Board, *fakeUpdater) {
	updater := &fakeUpdater{fail: fail, source: services.SourceRemote}
	b := New(updater)
	t.Cleanup(b.Close)
	b.SetTasks(boardTasks())
	return b, updater
}

func ordersIn(b *Board, status models.TaskStatus) map[string]int {
	orders := map[string]int{}
	for _, task := range b.TasksByStatus(status) {
		orders[task.ID] = task.Order
	}
	return orders
}

func TestBoard_MoveWithinColumn(t *testing.T) {
	b, updater := newTestBoard(t, false)

	// Moving B to the head of review pushes A down.
	if _, err := b.Move(context.Background(), "task-b", models.StatusReview, 0); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	orders := ordersIn(b, models.StatusReview)
	if orders["task-b"] != 0 || orders["task-a"] != 1 {
		t.Errorf("Expected b=0 a=1, got %v", orders)
	}

	moves := updater.recorded()
	if len(moves) != 1 || moves[0] != (recordedMove{"task-b", models.StatusReview, 0}) {
		t.Errorf("Unexpected persisted moves: %v", moves)
	}
}

func TestBoard_DownwardMoveWithinColumn(t *testing.T) {
	updater := &fakeUpdater{source: services.SourceRemote}
	b := New(updater)
	t.Cleanup(b.Close)
	b.SetTasks([]models.Task{
		{ID: "task-a", Status: models.StatusReview, Order: 0},
		{ID: "task-b", Status: models.StatusReview, Order: 1},
		{ID: "task-c", Status: models.StatusReview, Order: 2},
	})

	// Dragging A to the bottom must land it at the requested position,
	// not one slot short of it.
	if _, err := b.Move(context.Background(), "task-a", models.StatusReview, 2); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	col := b.TasksByStatus(models.StatusReview)
	got := []string{col[0].ID, col[1].ID, col[2].ID}
	want := []string{"task-b", "task-c", "task-a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected column %v, got %v", want, got)
		}
	}

	moves := updater.recorded()
	if len(moves) != 1 || moves[0].order != 2 {
		t.Errorf("Expected persisted order 2, got %v", moves)
	}

	// Moving to the middle works the same way.
	if _, err := b.Move(context.Background(), "task-b", models.StatusReview, 1); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	col = b.TasksByStatus(models.StatusReview)
	if col[1].ID != "task-b" {
		t.Errorf("Expected task-b at position 1, got %s", col[1].ID)
	}
}

func TestBoard_MoveAcrossColumns(t *testing.T) {
	b, _ := newTestBoard(t, false)

	if _, err := b.Move(context.Background(), "task-a", models.StatusBacklog, 0); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	backlog := ordersIn(b, models.StatusBacklog)
	if backlog["task-a"] != 0 || backlog["task-c"] != 1 {
		t.Errorf("Expected a=0 c=1 in backlog, got %v", backlog)
	}

	// The vacated column renumbers back to 0..n-1.
	review := ordersIn(b, models.StatusReview)
	if review["task-b"] != 0 {
		t.Errorf("Expected b=0 in review after a left, got %v", review)
	}
}

func TestBoard_MoveClampsOrder(t *testing.T) {
	b, updater := newTestBoard(t, false)

	if _, err := b.Move(context.Background(), "task-c", models.StatusReview, 99); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	orders := ordersIn(b, models.StatusReview)
	if orders["task-c"] != 2 {
		t.Errorf("Expected c clamped to end of column (2), got %v", orders)
	}

	// The clamped position is what gets persisted.
	moves := updater.recorded()
	if len(moves) != 1 || moves[0].order != 2 {
		t.Errorf("Expected persisted order 2, got %v", moves)
	}
}

func TestBoard_MoveReturnsPersistedSource(t *testing.T) {
	updater := &fakeUpdater{source: services.SourceLocal, warning: "remote unavailable"}
	b := New(updater)
	t.Cleanup(b.Close)
	b.SetTasks(boardTasks())

	result, err := b.Move(context.Background(), "task-a", models.StatusDone, 0)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if result.Source != services.SourceLocal {
		t.Errorf("Expected local-fallback source surfaced, got %q", result.Source)
	}
	if result.Warning != "remote unavailable" {
		t.Errorf("Expected warning surfaced, got %q", result.Warning)
	}
}

func TestBoard_NoDuplicateOrdersAfterMoves(t *testing.T) {
	b, _ := newTestBoard(t, false)

	b.Move(context.Background(), "task-c", models.StatusReview, 1)
	b.Move(context.Background(), "task-a", models.StatusDone, 0)
	b.Move(context.Background(), "task-b", models.StatusReview, 0)

	for _, status := range models.TaskStatuses {
		seen := map[int]string{}
		for _, task := range b.TasksByStatus(status) {
			if prev, dup := seen[task.Order]; dup {
				t.Errorf("Duplicate order %d in %s: %s and %s", task.Order, status, prev, task.ID)
			}
			seen[task.Order] = task.ID
		}
		// Orders must be contiguous from zero.
		for i := 0; i < len(seen); i++ {
			if _, ok := seen[i]; !ok {
				t.Errorf("Column %s has a gap at order %d", status, i)
			}
		}
	}
}

func TestBoard_RollbackOnPersistFailure(t *testing.T) {
	b, _ := newTestBoard(t, true)

	_, err := b.Move(context.Background(), "task-b", models.StatusDone, 0)
	if err == nil {
		t.Fatal("Expected persistence failure to surface")
	}

	// The moved task returns to its old status and order.
	var taskB models.Task
	for _, task := range b.Snapshot() {
		if task.ID == "task-b" {
			taskB = task
		}
	}
	if taskB.Status != models.StatusReview || taskB.Order != 1 {
		t.Errorf("Expected task-b restored to review/1, got %s/%d", taskB.Status, taskB.Order)
	}

	if len(b.TasksByStatus(models.StatusDone)) != 0 {
		t.Error("Expected done column empty after rollback")
	}
}

func TestBoard_MoveUnknownTaskIsNoOp(t *testing.T) {
	b, updater := newTestBoard(t, false)

	result, err := b.Move(context.Background(), "task-ghost", models.StatusDone, 0)
	if err != nil {
		t.Errorf("Expected nil for unknown task, got %v", err)
	}
	if result.Source != "" {
		t.Errorf("Expected empty source for unknown task, got %q", result.Source)
	}
	if len(updater.recorded()) != 0 {
		t.Error("Expected no persistence attempt for unknown task")
	}
}

func TestBoard_MoveAfterCloseErrors(t *testing.T) {
	updater := &fakeUpdater{source: services.SourceRemote}
	b := New(updater)
	b.SetTasks(boardTasks())
	b.Close()

	if _, err := b.Move(context.Background(), "task-a", models.StatusDone, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after Close, got %v", err)
	}

	// A second Close is a no-op rather than a panic.
	b.Close()
}

func TestBoard_ConcurrentMovesPersistSequentially(t *testing.T) {
	updater := &fakeUpdater{source: services.SourceRemote}
	b := New(updater)
	t.Cleanup(b.Close)

	var tasks []models.Task
	for i := 0; i < 8; i++ {
		tasks = append(tasks, models.Task{
			ID:     string(rune('a' + i)),
			Status: models.StatusBacklog,
			Order:  i,
		})
	}
	b.SetTasks(tasks)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := b.Move(context.Background(), id, models.StatusDone, 0); err != nil {
				t.Errorf("Move of %s failed: %v", id, err)
			}
		}(string(rune('a' + i)))
	}
	wg.Wait()

	if got := len(updater.recorded()); got != 8 {
		t.Fatalf("Expected 8 persisted moves, got %d", got)
	}

	// Every task landed in done with contiguous unique orders.
	done := b.TasksByStatus(models.StatusDone)
	if len(done) != 8 {
		t.Fatalf("Expected 8 tasks in done, got %d", len(done))
	}
	for i, task := range done {
		if task.Order != i {
			t.Errorf("Expected contiguous orders, got %d at position %d", task.Order, i)
		}
	}
}

func TestBoard_UpsertAndRemove(t *testing.T) {
	b, _ := newTestBoard(t, false)

	b.Upsert(models.Task{ID: "task-d", Status: models.StatusDone, Order: 0})
	if len(b.TasksByStatus(models.StatusDone)) != 1 {
		t.Error("Expected upserted task in done column")
	}

	b.Upsert(models.Task{ID: "task-d", Status: models.StatusDone, Order: 0, Title: "named"})
	if snapshot := b.Snapshot(); len(snapshot) != 4 {
		t.Errorf("Expected upsert of existing id to replace, board has %d tasks", len(snapshot))
	}

	b.Remove("task-d")
	if len(b.TasksByStatus(models.StatusDone)) != 0 {
		t.Error("Expected removed task gone from board")
	}
}
