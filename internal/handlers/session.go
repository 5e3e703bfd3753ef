package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flowboard/internal/cachestore"
)

// SessionHandler manages the bearer-token slot the remote gateway
// reads on every call. The login/logout flow that obtains the token
// lives outside this service; it only deposits the result here.
type SessionHandler struct {
	store *cachestore.Store
}

func NewSessionHandler(store *cachestore.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) SetToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.SetToken(input.Token)
	c.JSON(http.StatusOK, gin.H{"message": "token stored"})
}

func (h *SessionHandler) ClearToken(c *gin.Context) {
	h.store.ClearToken()
	c.JSON(http.StatusNoContent, nil)
}
