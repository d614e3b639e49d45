package llm

import "fmt"

// extractionPrompt wraps the transcript (and optional notes) in the fixed
// instruction preamble. The schema in the prompt must stay in sync with
// extractionSchema in schema.go.
func extractionPrompt(transcript, notes string) string {
	notesSection := ""
	if notes != "" {
		notesSection = fmt.Sprintf("Additional Notes:\n%s\n\n", notes)
	}

	return fmt.Sprintf(`You are analyzing a client meeting transcript for a web design project.

Extract the following and respond ONLY with valid JSON (no markdown code blocks):

{
  "client_name": "extracted client/company name",
  "project_summary": "2-3 paragraph summary of the project goals and what we'll build",
  "deliverables": [
    { "name": "Deliverable name", "description": "What this includes" }
  ],
  "timeline": [
    { "phase": "Phase name", "duration": "X weeks", "description": "What happens" }
  ],
  "client_needs": ["List of things we need from the client"],
  "technical_requirements": {
    "cms": "CMS platform if mentioned",
    "integrations": ["List of integrations mentioned"],
    "features": ["Key features discussed"]
  },
  "payment_milestones": [
    { "milestone": "Upon agreement", "percentage": 30 },
    { "milestone": "Upon design approval", "percentage": 40 },
    { "milestone": "Upon completion", "percentage": 30 }
  ]
}

Transcript:
%s

%sRespond with valid JSON only.`, transcript, notesSection)
}
