package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/models"
)

type DashboardAPI interface {
	Projects(ctx context.Context) ([]models.Project, error)
	Project(ctx context.Context, id string) (models.Project, error)
	KPIs(ctx context.Context) (models.KPISet, error)
	Activities(ctx context.Context) ([]models.Activity, error)
}

// DashboardHandler serves the live-only dashboard reads: projects,
// KPI cards, activity feed. These have no cache fallback, so remote
// failures surface directly.
type DashboardHandler struct {
	dashboard DashboardAPI
}

func NewDashboardHandler(dashboard DashboardAPI) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) ListProjects(c *gin.Context) {
	projects, err := h.dashboard.Projects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects})
}

func (h *DashboardHandler) GetProject(c *gin.Context) {
	project, err := h.dashboard.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": project})
}

func (h *DashboardHandler) GetKPIs(c *gin.Context) {
	kpis, err := h.dashboard.KPIs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": kpis})
}

func (h *DashboardHandler) ListActivities(c *gin.Context) {
	activities, err := h.dashboard.Activities(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": activities})
}
