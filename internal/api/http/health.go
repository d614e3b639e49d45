package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Renderer  string    `json:"renderer,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	canRender   bool
}

func NewHealthHandler(serviceName, version string, canRender bool) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		canRender:   canRender,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	renderer := "disabled"
	if h.canRender {
		renderer = "enabled"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Renderer:  renderer,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
