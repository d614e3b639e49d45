// Package domain holds the proposal data model shared by the extraction,
// assembly, and HTTP layers.
package domain

import "time"

// Deliverable is one piece of work the proposal commits to.
type Deliverable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TimelinePhase is one row of the project timeline. Duration is free text
// ("2 weeks"); the first integer in it counts toward the project total.
type TimelinePhase struct {
	Phase       string `json:"phase"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// TechnicalRequirements captures the platform details mentioned in the
// transcript. CMS is empty when none was mentioned.
type TechnicalRequirements struct {
	CMS          string   `json:"cms,omitempty"`
	Integrations []string `json:"integrations"`
	Features     []string `json:"features"`
}

// PaymentMilestone is a percentage-of-total payment step. Percentages are
// not required to sum to 100.
type PaymentMilestone struct {
	Milestone  string  `json:"milestone"`
	Percentage float64 `json:"percentage"`
}

// ProposalInput is the structured result of analyzing a meeting transcript.
type ProposalInput struct {
	ClientName            string                `json:"client_name"`
	ProjectSummary        string                `json:"project_summary"`
	Deliverables          []Deliverable         `json:"deliverables"`
	Timeline              []TimelinePhase       `json:"timeline"`
	ClientNeeds           []string              `json:"client_needs"`
	TechnicalRequirements TechnicalRequirements `json:"technical_requirements"`
	PaymentMilestones     []PaymentMilestone    `json:"payment_milestones"`
}

// BusinessSettings identifies the studio issuing the proposal.
type BusinessSettings struct {
	BusinessName  string `json:"business_name"`
	BusinessEmail string `json:"business_email"`
	BusinessPhone string `json:"business_phone,omitempty"`
}

// ProposalDocument is the assembled, never-mutated proposal text.
type ProposalDocument struct {
	ClientName string    `json:"client_name"`
	Slug       string    `json:"slug"`
	Markdown   string    `json:"markdown"`
	CreatedAt  time.Time `json:"created_at"`
}
