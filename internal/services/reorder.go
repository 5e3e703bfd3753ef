package services

import (
	"fmt"
	"sort"
	"time"

	"flowboard/internal/models"
)

func mintID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func findTask(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func columnSize(tasks []models.Task, status models.TaskStatus) int {
	n := 0
	for i := range tasks {
		if tasks[i].Status == status {
			n++
		}
	}
	return n
}

// applyMove replays a board move on the slice with remove-then-insert
// semantics: close the gap the task leaves behind, clamp the requested
// position to the destination column, open a slot by shifting siblings
// at or after it, place the task, then renumber the source and
// destination columns back to contiguous 0..n-1. Compacting before
// inserting is what makes the requested position the final rendered
// position for downward moves within one column.
func applyMove(tasks []models.Task, idx int, newStatus models.TaskStatus, newOrder int) {
	oldStatus := tasks[idx].Status
	oldOrder := tasks[idx].Order

	for i := range tasks {
		if i == idx {
			continue
		}
		if tasks[i].Status == oldStatus && tasks[i].Order > oldOrder {
			tasks[i].Order--
		}
	}

	destSize := 0
	for i := range tasks {
		if i != idx && tasks[i].Status == newStatus {
			destSize++
		}
	}
	if newOrder < 0 {
		newOrder = 0
	}
	if newOrder > destSize {
		newOrder = destSize
	}

	for i := range tasks {
		if i == idx {
			continue
		}
		if tasks[i].Status == newStatus && tasks[i].Order >= newOrder {
			tasks[i].Order++
		}
	}
	tasks[idx].Status = newStatus
	tasks[idx].Order = newOrder

	renumberColumn(tasks, newStatus)
	if oldStatus != newStatus {
		renumberColumn(tasks, oldStatus)
	}
}

// renumberColumn rewrites orders within a status partition to 0..n-1,
// preserving the current relative order.
func renumberColumn(tasks []models.Task, status models.TaskStatus) {
	var col []int
	for i := range tasks {
		if tasks[i].Status == status {
			col = append(col, i)
		}
	}
	sort.SliceStable(col, func(a, b int) bool {
		return tasks[col[a]].Order < tasks[col[b]].Order
	})
	for pos, i := range col {
		tasks[i].Order = pos
	}
}
