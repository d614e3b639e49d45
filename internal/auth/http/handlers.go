package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/auth"
)

// Handler serves login and auth-check.
type Handler struct {
	svc     *auth.Service
	limiter *rate.Limiter
}

// New creates the auth handler. loginRatePerMin throttles login attempts
// across all callers since the gate is a single shared password.
func New(svc *auth.Service, loginRatePerMin int) *Handler {
	return &Handler{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(float64(loginRatePerMin)/60), loginRatePerMin),
	}
}

// Register attaches auth routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.GET("/auth-check", h.authCheck)
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	if !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many login attempts"})
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "password is required", "code": apperrors.ErrCodeValidationFailed})
		return
	}

	token, err := h.svc.Issue(req.Password)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *Handler) authCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": h.svc.Verify(c.GetHeader(auth.TokenHeader))})
}
