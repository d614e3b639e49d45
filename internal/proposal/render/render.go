// Package render converts assembled markdown into a distributable PDF by
// delegating layout and pagination to an external converter command.
package render

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/metrics"
)

//go:embed theme.css
var themeCSS []byte

// Renderer converts a markdown file into a PDF at the destination path.
type Renderer interface {
	Render(ctx context.Context, markdownPath, pdfPath string) error
}

// CommandRenderer shells out to a markdown-to-PDF converter binary. Page
// geometry is fixed: US Letter, one-inch margins on all sides. The visual
// theme is the embedded stylesheet; callers get no layout customization.
type CommandRenderer struct {
	bin string
}

// NewCommandRenderer wraps the given converter command.
func NewCommandRenderer(bin string) *CommandRenderer {
	return &CommandRenderer{bin: bin}
}

// Render writes the stylesheet next to the output file and invokes the
// converter. Converter failures surface as RENDER_FAILED with the command
// output attached.
func (r *CommandRenderer) Render(ctx context.Context, markdownPath, pdfPath string) error {
	cssPath := filepath.Join(filepath.Dir(pdfPath), "theme.css")
	if err := os.WriteFile(cssPath, themeCSS, 0o644); err != nil {
		return apperrors.NewRender(fmt.Errorf("write stylesheet: %w", err))
	}

	args := []string{
		markdownPath,
		"--output", pdfPath,
		"--stylesheet", cssPath,
		"--page-size", "Letter",
		"--margin-top", "1in",
		"--margin-right", "1in",
		"--margin-bottom", "1in",
		"--margin-left", "1in",
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	start := time.Now()
	err := cmd.Run()
	metrics.ObserveRender(time.Since(start))
	if err != nil {
		return apperrors.NewRender(fmt.Errorf("%s: %w: %s", r.bin, err, out.String()))
	}

	if _, err := os.Stat(pdfPath); err != nil {
		return apperrors.NewRender(fmt.Errorf("%s produced no output file: %w", r.bin, err))
	}
	return nil
}
