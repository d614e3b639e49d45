package feeds

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
)

// Handler serves the public feed endpoint.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Register attaches feed routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/youtube-rss", h.feed)
}

func (h *Handler) feed(c *gin.Context) {
	channelID := c.Query("channelId")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "channelId is required", "code": apperrors.ErrCodeValidationFailed})
		return
	}

	max := 1
	if raw := c.Query("max"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			max = n
		}
	}

	xmlText, err := h.client.FetchXML(c.Request.Context(), channelID)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}

	if c.DefaultQuery("format", "json") == "xml" {
		c.Data(http.StatusOK, "application/xml", []byte(xmlText))
		return
	}

	entries, err := ParseEntries(xmlText, max)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
