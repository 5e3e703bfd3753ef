package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/models"
	"flowboard/internal/services"
)

type TeamAPI interface {
	List(ctx context.Context) (services.MemberListResult, error)
	Create(ctx context.Context, draft models.MemberDraft) (services.MemberResult, error)
	Update(ctx context.Context, id string, patch models.MemberPatch) (services.MemberResult, error)
	Delete(ctx context.Context, id string) (services.Result, error)
}

type TeamHandler struct {
	team TeamAPI
}

func NewTeamHandler(team TeamAPI) *TeamHandler {
	return &TeamHandler{team: team}
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	result, err := h.team.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result)
}

func (h *TeamHandler) CreateMember(c *gin.Context) {
	var draft models.MemberDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.team.Create(c.Request.Context(), draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusCreated, result)
}

func (h *TeamHandler) UpdateMember(c *gin.Context) {
	var patch models.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.team.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result)
}

func (h *TeamHandler) DeleteMember(c *gin.Context) {
	result, err := h.team.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header(sourceHeader, string(result.Source))
	c.JSON(http.StatusOK, result)
}
