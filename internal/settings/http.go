package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wenlaunch/proposal-backend/internal/proposal/domain"
)

// Handler serves the settings endpoints.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Register attaches settings routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/settings", h.get)
	rg.POST("/settings", h.save)
}

func (h *Handler) get(c *gin.Context) {
	s, err := h.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not read settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) save(c *gin.Context) {
	var s domain.BusinessSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.store.Save(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
