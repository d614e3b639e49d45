// Package assemble turns extracted proposal input into the final markdown
// document. Assembly is deterministic for a given input, settings, total
// price, and date.
package assemble

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/metrics"
	"github.com/wenlaunch/proposal-backend/internal/proposal/domain"
)

const (
	defaultBusinessName  = "Your Design Studio"
	defaultBusinessEmail = "hello@example.com"

	timelineCaveat = "*Please note: We operate in a creative capacity, and project timelines are dependent on the client's cooperation, timely responses, and clear direction on project requirements. Delays in providing feedback, content, or assets may extend the timeline accordingly.*"

	termsAndConditions = `- All content and assets must be provided by client before design phase begins
- Revisions are included within each phase; additional rounds may incur extra fees
- Timeline begins upon receipt of deposit and required materials
- Final files delivered upon receipt of final payment`
)

var (
	firstIntRe = regexp.MustCompile(`(\d+)`)
	slugRe     = regexp.MustCompile(`[^a-zA-Z0-9]+`)

	usd = message.NewPrinter(language.AmericanEnglish)
)

// TotalWeeks sums the first integer found in each phase's duration label.
// Labels without digits contribute zero.
func TotalWeeks(timeline []domain.TimelinePhase) int {
	total := 0
	for _, phase := range timeline {
		if m := firstIntRe.FindString(phase.Duration); m != "" {
			n, _ := strconv.Atoi(m)
			total += n
		}
	}
	return total
}

// MilestoneAmount rounds percentage-of-total to the nearest whole dollar.
func MilestoneAmount(percentage, totalPrice float64) int64 {
	return int64(math.Round(percentage / 100 * totalPrice))
}

// formatUSD renders a whole-dollar amount with thousands separators.
func formatUSD(amount int64) string {
	return usd.Sprintf("$%d", amount)
}

// Slug derives a filesystem-safe identifier from the client name.
func Slug(name string) string {
	s := strings.Trim(slugRe.ReplaceAllString(name, "-"), "-")
	if s == "" {
		s = "proposal"
	}
	return strings.ToLower(s)
}

// Assemble builds the proposal document. Missing scalar fields render as
// empty sections; entirely absent deliverables, timeline, client needs, or
// payment milestones are an error because the document would be meaningless
// without them.
func Assemble(input *domain.ProposalInput, settings domain.BusinessSettings, totalPrice float64, now time.Time) (domain.ProposalDocument, error) {
	if input.Deliverables == nil || input.Timeline == nil || input.ClientNeeds == nil || input.PaymentMilestones == nil {
		return domain.ProposalDocument{}, apperrors.NewValidation(
			"deliverables, timeline, client_needs, and payment_milestones are required")
	}

	businessName := settings.BusinessName
	if businessName == "" {
		businessName = defaultBusinessName
	}
	businessEmail := settings.BusinessEmail
	if businessEmail == "" {
		businessEmail = defaultBusinessEmail
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# Web Design Proposal\n\n")
	fmt.Fprintf(&b, "**Client:** %s  \n", input.ClientName)
	fmt.Fprintf(&b, "**Date:** %s  \n", now.Format("January 2, 2006"))
	fmt.Fprintf(&b, "**From:** %s\n\n---\n\n", businessName)

	fmt.Fprintf(&b, "## Project Summary\n\n%s\n\n---\n\n", input.ProjectSummary)

	b.WriteString("## Deliverables\n\n")
	for _, item := range input.Deliverables {
		fmt.Fprintf(&b, "### %s\n%s\n\n", item.Name, item.Description)
	}

	b.WriteString("---\n\n## Project Timeline\n\n")
	b.WriteString("| Phase | Duration | Description |\n")
	b.WriteString("|-------|----------|-------------|\n")
	for _, phase := range input.Timeline {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", phase.Phase, phase.Duration, phase.Description)
	}
	fmt.Fprintf(&b, "| **Total** | **%d weeks** | |\n\n", TotalWeeks(input.Timeline))
	b.WriteString(timelineCaveat + "\n\n---\n\n")

	b.WriteString("## What We Need From You\n\n")
	for _, need := range input.ClientNeeds {
		fmt.Fprintf(&b, "- [ ] %s\n", need)
	}
	b.WriteString("\n")

	if tr := input.TechnicalRequirements; tr.CMS != "" || len(tr.Integrations) > 0 || len(tr.Features) > 0 {
		b.WriteString("---\n\n## Technical Requirements\n\n")
		if tr.CMS != "" {
			fmt.Fprintf(&b, "**CMS:** %s\n\n", tr.CMS)
		}
		if len(tr.Integrations) > 0 {
			b.WriteString("**Integrations:**\n")
			for _, integration := range tr.Integrations {
				fmt.Fprintf(&b, "- %s\n", integration)
			}
			b.WriteString("\n")
		}
		if len(tr.Features) > 0 {
			b.WriteString("**Key Features:**\n")
			for _, feature := range tr.Features {
				fmt.Fprintf(&b, "- %s\n", feature)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("---\n\n## Investment\n\n")
	b.WriteString("| Milestone | Percentage | Amount |\n")
	b.WriteString("|-----------|------------|--------|\n")
	for _, m := range input.PaymentMilestones {
		fmt.Fprintf(&b, "| %s | %g%% | %s |\n", m.Milestone, m.Percentage, formatUSD(MilestoneAmount(m.Percentage, totalPrice)))
	}
	fmt.Fprintf(&b, "\n**Total Investment: %s**\n\n---\n\n", formatUSD(int64(math.Round(totalPrice))))

	fmt.Fprintf(&b, "## Terms & Conditions\n\n%s\n\n---\n\n", termsAndConditions)

	fmt.Fprintf(&b, "**%s**  \n%s", businessName, businessEmail)
	if settings.BusinessPhone != "" {
		fmt.Fprintf(&b, "  \n%s", settings.BusinessPhone)
	}
	b.WriteString("\n")

	metrics.CountProposal()

	return domain.ProposalDocument{
		ClientName: input.ClientName,
		Slug:       Slug(input.ClientName),
		Markdown:   b.String(),
		CreatedAt:  now,
	}, nil
}
