package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/proposal/service"
	"github.com/wenlaunch/proposal-backend/internal/settings"
)

// Handler serves the transcript analysis and proposal generation endpoints.
type Handler struct {
	svc      *service.ProposalService
	settings *settings.Store
}

func New(svc *service.ProposalService, store *settings.Store) *Handler {
	return &Handler{svc: svc, settings: store}
}

// Register attaches proposal routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/generate-pdf", h.generate)
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body", "code": apperrors.ErrCodeValidationFailed})
		return
	}

	input, err := h.svc.Analyze(c.Request.Context(), req.Transcript, req.Notes)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}

	c.JSON(http.StatusOK, input)
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body", "code": apperrors.ErrCodeValidationFailed})
		return
	}
	if req.TotalPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "total_price must be positive", "code": apperrors.ErrCodeValidationFailed})
		return
	}

	biz, err := h.settings.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not read settings", "code": apperrors.ErrCodeInternal})
		return
	}
	if strings.TrimSpace(req.BusinessEmail) != "" {
		biz.BusinessEmail = strings.TrimSpace(req.BusinessEmail)
	}
	if strings.TrimSpace(req.BusinessPhone) != "" {
		biz.BusinessPhone = strings.TrimSpace(req.BusinessPhone)
	}

	wantPDF := req.Format != "markdown" && h.svc.CanRender()

	result, err := h.svc.Generate(c.Request.Context(), &req.ProposalInput, biz, req.TotalPrice, wantPDF)
	if err != nil {
		ae := apperrors.AsAppError(err)
		c.JSON(ae.HTTPStatus(), gin.H{"ok": false, "error": ae.Message, "code": ae.Code})
		return
	}

	if result.PDFPath != "" {
		c.FileAttachment(result.PDFPath, fmt.Sprintf("proposal-%s.pdf", result.Document.Slug))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"markdown": result.Document.Markdown,
		"path":     result.MarkdownPath,
	})
}
