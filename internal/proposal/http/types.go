package http

import "github.com/wenlaunch/proposal-backend/internal/proposal/domain"

type analyzeReq struct {
	Transcript string `json:"transcript"`
	Notes      string `json:"notes"`
}

// generateReq carries the (possibly hand-edited) proposal input plus the
// pricing and per-request business overrides.
type generateReq struct {
	domain.ProposalInput

	TotalPrice    float64 `json:"total_price"`
	BusinessEmail string  `json:"business_email"`
	BusinessPhone string  `json:"business_phone"`
	// Format selects "pdf" (default) or "markdown".
	Format string `json:"format"`
}
