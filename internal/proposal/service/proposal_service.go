// Package service wires extraction, assembly, and rendering into the
// proposal pipeline. Each call is a single-shot request with no retries.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/proposal/assemble"
	"github.com/wenlaunch/proposal-backend/internal/proposal/domain"
	"github.com/wenlaunch/proposal-backend/internal/proposal/render"
)

// Extractor analyzes a transcript into structured proposal input.
type Extractor interface {
	Extract(ctx context.Context, transcript, notes string) (*domain.ProposalInput, error)
}

// ProposalService runs the extract -> assemble -> render pipeline.
type ProposalService struct {
	extractor Extractor
	renderer  render.Renderer // nil disables PDF output
	outputDir string
	logoPath  string
	log       *zap.Logger
}

// NewProposalService creates the pipeline service. renderer may be nil when
// no converter is configured; Generate then returns markdown only.
func NewProposalService(extractor Extractor, renderer render.Renderer, outputDir, logoPath string, log *zap.Logger) *ProposalService {
	return &ProposalService{
		extractor: extractor,
		renderer:  renderer,
		outputDir: outputDir,
		logoPath:  logoPath,
		log:       log,
	}
}

// CanRender reports whether a PDF converter is configured.
func (s *ProposalService) CanRender() bool { return s.renderer != nil }

// Analyze validates and extracts a transcript.
func (s *ProposalService) Analyze(ctx context.Context, transcript, notes string) (*domain.ProposalInput, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, apperrors.NewValidation("transcript is required")
	}

	input, err := s.extractor.Extract(ctx, transcript, notes)
	if err != nil {
		s.log.Warn("transcript analysis failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("transcript analyzed",
		zap.String("client", input.ClientName),
		zap.Int("deliverables", len(input.Deliverables)),
		zap.Int("phases", len(input.Timeline)))
	return input, nil
}

// GenerateResult holds the produced document and where it was written.
type GenerateResult struct {
	Document     domain.ProposalDocument
	MarkdownPath string
	PDFPath      string // empty unless a PDF was rendered
}

// Generate assembles the proposal document, persists the markdown under the
// output directory, and renders a PDF when requested and a converter is
// available. Output files are keyed by client slug plus millisecond
// timestamp so concurrent requests never collide.
func (s *ProposalService) Generate(ctx context.Context, input *domain.ProposalInput, settings domain.BusinessSettings, totalPrice float64, wantPDF bool) (*GenerateResult, error) {
	now := time.Now()

	doc, err := assemble.Assemble(input, settings, totalPrice, now)
	if err != nil {
		return nil, err
	}

	markdown := render.LogoHeader(s.logoPath) + doc.Markdown

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "create output directory", err)
	}

	base := fmt.Sprintf("proposal-%s-%d", doc.Slug, now.UnixMilli())
	mdPath := filepath.Join(s.outputDir, base+".md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "write markdown", err)
	}

	result := &GenerateResult{Document: doc, MarkdownPath: mdPath}

	if wantPDF && s.renderer != nil {
		pdfPath := filepath.Join(s.outputDir, base+".pdf")
		if err := s.renderer.Render(ctx, mdPath, pdfPath); err != nil {
			s.log.Error("pdf render failed", zap.String("client", doc.ClientName), zap.Error(err))
			return nil, err
		}
		result.PDFPath = pdfPath
	}

	s.log.Info("proposal generated",
		zap.String("client", doc.ClientName),
		zap.String("markdown", result.MarkdownPath),
		zap.String("pdf", result.PDFPath))
	return result, nil
}
