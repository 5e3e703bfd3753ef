package gateway

import (
	"testing"

	"flowboard/internal/models"
)

func TestStatusMappingRoundTrip(t *testing.T) {
	for _, status := range models.TaskStatuses {
		if got := statusFromWire(statusToWire(status)); got != status {
			t.Errorf("Status %q did not survive the wire round trip, got %q", status, got)
		}
	}
	if statusToWire(models.StatusInProgress) != "IN_PROGRESS" {
		t.Error("Expected in-progress to map to IN_PROGRESS")
	}
}

func TestUnknownEnumsPassThroughLeniently(t *testing.T) {
	// New server-side enum values must not break decoding.
	if got := statusFromWire("ON_HOLD"); got != models.TaskStatus("on-hold") {
		t.Errorf("Expected lenient mapping on-hold, got %q", got)
	}
	if got := priorityFromWire("CRITICAL"); got != models.TaskPriority("critical") {
		t.Errorf("Expected lenient mapping critical, got %q", got)
	}
	if got := roleFromWire("INTERN"); got != models.MemberRole("intern") {
		t.Errorf("Expected lenient mapping intern, got %q", got)
	}
}

func TestPatchToWireOmitsUnsetFields(t *testing.T) {
	title := "Renamed"
	status := models.StatusDone
	body := patchToWire(models.TaskPatch{Title: &title, Status: &status})

	if len(body) != 2 {
		t.Errorf("Expected exactly 2 fields in patch body, got %d: %v", len(body), body)
	}
	if body["title"] != "Renamed" {
		t.Errorf("Expected title Renamed, got %v", body["title"])
	}
	if body["status"] != "DONE" {
		t.Errorf("Expected wire status DONE, got %v", body["status"])
	}
}

func TestMemberDraftToWireMapsRoleAndJoinDate(t *testing.T) {
	w := memberDraftToWire(models.MemberDraft{
		Name:     "Ann",
		Email:    "a@b.co",
		Role:     models.RoleDesigner,
		Status:   models.MemberActive,
		JoinDate: "2025-03-01",
	})
	if w.Role != "DESIGNER" {
		t.Errorf("Expected wire role DESIGNER, got %q", w.Role)
	}
	if w.Status != "ACTIVE" {
		t.Errorf("Expected wire status ACTIVE, got %q", w.Status)
	}
	if w.JoinDate != "2025-03-01" {
		t.Errorf("Expected join_date preserved, got %q", w.JoinDate)
	}
}
