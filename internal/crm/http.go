package crm

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
)

// Handler serves the CRM passthrough endpoints.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Register attaches CRM routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/crm", h.list)
	rg.POST("/crm", h.create)
	rg.PATCH("/crm", h.update)
}

func (h *Handler) list(c *gin.Context) {
	resp, err := h.client.List(c.Request.Context())
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name is required", "code": apperrors.ErrCodeValidationFailed})
		return
	}

	entry, err := h.client.Create(c.Request.Context(), req)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body", "code": apperrors.ErrCodeValidationFailed})
		return
	}

	entry, err := h.client.Update(c.Request.Context(), req)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}
	c.JSON(http.StatusOK, entry)
}
