package gateway

import (
	"strings"
	"time"

	"flowboard/internal/models"
)

// The backend speaks snake_case fields with SCREAMING_SNAKE enums; the
// domain speaks camelCase with lower-case hyphenated enums. Translation
// is centralized here as total, bidirectional functions so no call site
// renames fields ad hoc.

type wireAssignee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type wireTask struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority"`
	ProjectID   string        `json:"project_id,omitempty"`
	ProjectName string        `json:"project_name,omitempty"`
	Assignee    *wireAssignee `json:"assignee,omitempty"`
	DueDate     string        `json:"due_date,omitempty"`
	Order       int           `json:"order"`
	CreatedAt   time.Time     `json:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty"`
}

type wireMember struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	Department string    `json:"department,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	JoinDate   string    `json:"join_date"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type wireProject struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Status      string              `json:"status"`
	Owner       string              `json:"owner,omitempty"`
	Deadline    string              `json:"deadline,omitempty"`
	Tasks       []wireTaskSummary   `json:"tasks,omitempty"`
	TeamMembers []wireMemberSummary `json:"team_members,omitempty"`
}

type wireTaskSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type wireMemberSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireKPISet struct {
	ActiveProjects  int     `json:"active_projects"`
	TasksInProgress int     `json:"tasks_in_progress"`
	TeamMembers     int     `json:"team_members"`
	CompletionRate  float64 `json:"completion_rate"`
}

type wireActivity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Actor     string `json:"actor,omitempty"`
	Timestamp string `json:"timestamp"`
}

func statusToWire(s models.TaskStatus) string {
	switch s {
	case models.StatusBacklog:
		return "BACKLOG"
	case models.StatusInProgress:
		return "IN_PROGRESS"
	case models.StatusReview:
		return "REVIEW"
	case models.StatusDone:
		return "DONE"
	default:
		return strings.ToUpper(strings.ReplaceAll(string(s), "-", "_"))
	}
}

func statusFromWire(s string) models.TaskStatus {
	switch s {
	case "BACKLOG":
		return models.StatusBacklog
	case "IN_PROGRESS":
		return models.StatusInProgress
	case "REVIEW":
		return models.StatusReview
	case "DONE":
		return models.StatusDone
	default:
		return models.TaskStatus(strings.ReplaceAll(strings.ToLower(s), "_", "-"))
	}
}

func priorityToWire(p models.TaskPriority) string {
	switch p {
	case models.PriorityLow:
		return "LOW"
	case models.PriorityMedium:
		return "MEDIUM"
	case models.PriorityHigh:
		return "HIGH"
	case models.PriorityUrgent:
		return "URGENT"
	default:
		return strings.ToUpper(string(p))
	}
}

func priorityFromWire(p string) models.TaskPriority {
	switch p {
	case "LOW":
		return models.PriorityLow
	case "MEDIUM":
		return models.PriorityMedium
	case "HIGH":
		return models.PriorityHigh
	case "URGENT":
		return models.PriorityUrgent
	default:
		return models.TaskPriority(strings.ToLower(p))
	}
}

func roleToWire(r models.MemberRole) string {
	switch r {
	case models.RoleAdmin:
		return "ADMIN"
	case models.RoleDeveloper:
		return "DEVELOPER"
	case models.RoleDesigner:
		return "DESIGNER"
	case models.RoleManager:
		return "MANAGER"
	case models.RoleAnalyst:
		return "ANALYST"
	case models.RoleOther:
		return "OTHER"
	default:
		return strings.ToUpper(string(r))
	}
}

func roleFromWire(r string) models.MemberRole {
	switch r {
	case "ADMIN":
		return models.RoleAdmin
	case "DEVELOPER":
		return models.RoleDeveloper
	case "DESIGNER":
		return models.RoleDesigner
	case "MANAGER":
		return models.RoleManager
	case "ANALYST":
		return models.RoleAnalyst
	case "OTHER":
		return models.RoleOther
	default:
		return models.MemberRole(strings.ToLower(r))
	}
}

func memberStatusToWire(s models.MemberStatus) string {
	switch s {
	case models.MemberActive:
		return "ACTIVE"
	case models.MemberAway:
		return "AWAY"
	case models.MemberInactive:
		return "INACTIVE"
	default:
		return strings.ToUpper(string(s))
	}
}

func memberStatusFromWire(s string) models.MemberStatus {
	switch s {
	case "ACTIVE":
		return models.MemberActive
	case "AWAY":
		return models.MemberAway
	case "INACTIVE":
		return models.MemberInactive
	default:
		return models.MemberStatus(strings.ToLower(s))
	}
}

func projectStatusFromWire(s string) models.ProjectStatus {
	switch s {
	case "ACTIVE":
		return models.ProjectActive
	case "PENDING":
		return models.ProjectPending
	case "BLOCKED":
		return models.ProjectBlocked
	default:
		return models.ProjectStatus(strings.ToLower(s))
	}
}

func assigneeToWire(a *models.Assignee) *wireAssignee {
	if a == nil {
		return nil
	}
	return &wireAssignee{ID: a.ID, Name: a.Name, AvatarURL: a.Avatar}
}

func assigneeFromWire(a *wireAssignee) *models.Assignee {
	if a == nil {
		return nil
	}
	return &models.Assignee{ID: a.ID, Name: a.Name, Avatar: a.AvatarURL}
}

func taskDraftToWire(d models.TaskDraft) wireTask {
	return wireTask{
		Title:       d.Title,
		Description: d.Description,
		Status:      statusToWire(d.Status),
		Priority:    priorityToWire(d.Priority),
		ProjectID:   d.ProjectID,
		ProjectName: d.ProjectName,
		Assignee:    assigneeToWire(d.Assignee),
		DueDate:     d.DueDate,
	}
}

func taskFromWire(w wireTask) models.Task {
	return models.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Status:      statusFromWire(w.Status),
		Priority:    priorityFromWire(w.Priority),
		ProjectID:   w.ProjectID,
		ProjectName: w.ProjectName,
		Assignee:    assigneeFromWire(w.Assignee),
		DueDate:     w.DueDate,
		Order:       w.Order,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func tasksFromWire(ws []wireTask) []models.Task {
	tasks := make([]models.Task, 0, len(ws))
	for _, w := range ws {
		tasks = append(tasks, taskFromWire(w))
	}
	return tasks
}

func memberDraftToWire(d models.MemberDraft) wireMember {
	return wireMember{
		Name:       d.Name,
		Email:      d.Email,
		Role:       roleToWire(d.Role),
		Status:     memberStatusToWire(d.Status),
		Department: d.Department,
		Phone:      d.Phone,
		Location:   d.Location,
		Bio:        d.Bio,
		AvatarURL:  d.Avatar,
		JoinDate:   d.JoinDate,
	}
}

func memberFromWire(w wireMember) models.TeamMember {
	return models.TeamMember{
		ID:         w.ID,
		Name:       w.Name,
		Email:      w.Email,
		Role:       roleFromWire(w.Role),
		Status:     memberStatusFromWire(w.Status),
		Department: w.Department,
		Phone:      w.Phone,
		Location:   w.Location,
		Bio:        w.Bio,
		Avatar:     w.AvatarURL,
		JoinDate:   w.JoinDate,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func membersFromWire(ws []wireMember) []models.TeamMember {
	members := make([]models.TeamMember, 0, len(ws))
	for _, w := range ws {
		members = append(members, memberFromWire(w))
	}
	return members
}

func projectFromWire(w wireProject) models.Project {
	p := models.Project{
		ID:       w.ID,
		Name:     w.Name,
		Status:   projectStatusFromWire(w.Status),
		Owner:    w.Owner,
		Deadline: w.Deadline,
	}
	for _, t := range w.Tasks {
		p.Tasks = append(p.Tasks, models.TaskSummary{
			ID:     t.ID,
			Title:  t.Title,
			Status: statusFromWire(t.Status),
		})
	}
	for _, m := range w.TeamMembers {
		p.TeamMembers = append(p.TeamMembers, models.MemberSummary{ID: m.ID, Name: m.Name})
	}
	return p
}
