package models

import (
	"testing"
	"time"
)

func TestTaskStatusValid(t *testing.T) {
	for _, status := range TaskStatuses {
		if !status.Valid() {
			t.Errorf("Expected %q to be a valid status", status)
		}
	}
	if TaskStatus("IN_PROGRESS").Valid() {
		t.Error("Wire-format enum must not pass domain validation")
	}
	if TaskStatus("").Valid() {
		t.Error("Empty status must not be valid")
	}
}

func TestTaskPatchApply(t *testing.T) {
	task := Task{
		ID:        "task-1",
		Title:     "Old",
		Status:    StatusBacklog,
		Priority:  PriorityLow,
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	title := "New"
	status := StatusDone
	TaskPatch{Title: &title, Status: &status}.Apply(&task)

	if task.Title != "New" {
		t.Errorf("Expected title New, got %q", task.Title)
	}
	if task.Status != StatusDone {
		t.Errorf("Expected status done, got %q", task.Status)
	}
	if task.Priority != PriorityLow {
		t.Error("Unset patch fields must leave the task untouched")
	}
	if !task.UpdatedAt.After(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected Apply to bump UpdatedAt")
	}
}

func TestMemberPatchApply(t *testing.T) {
	member := TeamMember{ID: "team-1", Name: "Old", Email: "old@b.co", Role: RoleDeveloper}

	name := "New"
	role := RoleManager
	MemberPatch{Name: &name, Role: &role}.Apply(&member)

	if member.Name != "New" || member.Role != RoleManager {
		t.Errorf("Patch not applied: %+v", member)
	}
	if member.Email != "old@b.co" {
		t.Error("Unset patch fields must leave the member untouched")
	}
}
