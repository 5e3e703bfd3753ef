// Package fixtures holds the seed data the cache store falls back to
// when a collection is absent or its persisted blob cannot be parsed.
package fixtures

import (
	"time"

	"flowboard/internal/models"
)

var seededAt = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// Tasks returns a fresh copy of the seed task set.
func Tasks() []models.Task {
	return []models.Task{
		{
			ID:          "task-seed-1",
			Title:       "Draft landing page copy",
			Description: "Hero section and feature highlights for the agent workflows page.",
			Status:      models.StatusBacklog,
			Priority:    models.PriorityMedium,
			ProjectID:   "project-seed-1",
			ProjectName: "Website relaunch",
			Order:       0,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "task-seed-2",
			Title:       "Wire dashboard KPI cards to API",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			ProjectID:   "project-seed-1",
			ProjectName: "Website relaunch",
			Assignee:    &models.Assignee{ID: "team-seed-1", Name: "Maya Lindholm"},
			DueDate:     "2025-06-20",
			Order:       0,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "task-seed-3",
			Title:       "Review onboarding flow",
			Description: "Walk through the invite path with a fresh account.",
			Status:      models.StatusReview,
			Priority:    models.PriorityLow,
			Assignee:    &models.Assignee{ID: "team-seed-2", Name: "Jonas Petit"},
			Order:       0,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:        "task-seed-4",
			Title:     "Set up staging environment",
			Status:    models.StatusDone,
			Priority:  models.PriorityUrgent,
			Order:     0,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}

// Members returns a fresh copy of the seed team member set.
func Members() []models.TeamMember {
	return []models.TeamMember{
		{
			ID:         "team-seed-1",
			Name:       "Maya Lindholm",
			Email:      "maya@flowboard.dev",
			Role:       models.RoleDeveloper,
			Status:     models.MemberActive,
			Department: "Engineering",
			Location:   "Stockholm",
			JoinDate:   "2024-02-12",
			CreatedAt:  seededAt,
			UpdatedAt:  seededAt,
		},
		{
			ID:        "team-seed-2",
			Name:      "Jonas Petit",
			Email:     "jonas@flowboard.dev",
			Role:      models.RoleDesigner,
			Status:    models.MemberAway,
			Location:  "Lyon",
			JoinDate:  "2023-11-03",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:         "team-seed-3",
			Name:       "Priya Raman",
			Email:      "priya@flowboard.dev",
			Role:       models.RoleManager,
			Status:     models.MemberActive,
			Department: "Product",
			JoinDate:   "2022-08-29",
			CreatedAt:  seededAt,
			UpdatedAt:  seededAt,
		},
	}
}
