package gateway

import (
	"context"
	"net/http"

	"flowboard/internal/models"
)

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []wireProject
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &out); err != nil {
		return nil, err
	}
	projects := make([]models.Project, 0, len(out))
	for _, w := range out {
		projects = append(projects, projectFromWire(w))
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	var out wireProject
	if err := c.do(ctx, http.MethodGet, "/projects/"+id, nil, nil, &out); err != nil {
		return models.Project{}, err
	}
	return projectFromWire(out), nil
}

func (c *Client) DashboardKPIs(ctx context.Context) (models.KPISet, error) {
	var out wireKPISet
	if err := c.do(ctx, http.MethodGet, "/dashboard/kpis", nil, nil, &out); err != nil {
		return models.KPISet{}, err
	}
	return models.KPISet{
		ActiveProjects:  out.ActiveProjects,
		TasksInProgress: out.TasksInProgress,
		TeamMembers:     out.TeamMembers,
		CompletionRate:  out.CompletionRate,
	}, nil
}

func (c *Client) DashboardActivities(ctx context.Context) ([]models.Activity, error) {
	var out []wireActivity
	if err := c.do(ctx, http.MethodGet, "/dashboard/activities", nil, nil, &out); err != nil {
		return nil, err
	}
	activities := make([]models.Activity, 0, len(out))
	for _, w := range out {
		activities = append(activities, models.Activity{
			ID:        w.ID,
			Type:      w.Type,
			Message:   w.Message,
			Actor:     w.Actor,
			Timestamp: w.Timestamp,
		})
	}
	return activities, nil
}
