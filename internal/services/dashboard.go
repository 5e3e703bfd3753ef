package services

import (
	"context"

	"flowboard/internal/models"
)

type DashboardGateway interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	DashboardKPIs(ctx context.Context) (models.KPISet, error)
	DashboardActivities(ctx context.Context) ([]models.Activity, error)
}

// DashboardService covers the read-only dashboard surface. Projects,
// KPIs and activities are always fetched live and never cached, so
// remote failures propagate to the caller unchanged.
type DashboardService struct {
	gw      DashboardGateway
	breaker *Breaker
}

func NewDashboardService(gw DashboardGateway, breaker *Breaker) *DashboardService {
	return &DashboardService{gw: gw, breaker: breaker}
}

func (s *DashboardService) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.breaker.Execute(func() error {
		var listErr error
		projects, listErr = s.gw.ListProjects(ctx)
		return listErr
	})
	return projects, err
}

func (s *DashboardService) Project(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	err := s.breaker.Execute(func() error {
		var getErr error
		project, getErr = s.gw.GetProject(ctx, id)
		return getErr
	})
	return project, err
}

func (s *DashboardService) KPIs(ctx context.Context) (models.KPISet, error) {
	var kpis models.KPISet
	err := s.breaker.Execute(func() error {
		var getErr error
		kpis, getErr = s.gw.DashboardKPIs(ctx)
		return getErr
	})
	return kpis, err
}

func (s *DashboardService) Activities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.breaker.Execute(func() error {
		var listErr error
		activities, listErr = s.gw.DashboardActivities(ctx)
		return listErr
	})
	return activities, err
}
