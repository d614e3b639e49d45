package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/proposal/domain"
)

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n?")

// stripFences removes markdown code-fence delimiters so that a fenced
// JSON block parses the same as bare JSON.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}

// Extract analyzes a meeting transcript and returns the structured proposal
// input. The transcript must be non-empty after trimming; callers enforce
// that. The call is not retried on failure.
func (c *Client) Extract(ctx context.Context, transcript, notes string) (*domain.ProposalInput, error) {
	text, err := c.Complete(ctx, extractionPrompt(transcript, notes))
	if err != nil {
		return nil, apperrors.NewUpstream("anthropic", err)
	}

	jsonText := stripFences(text)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(extractionSchema),
		gojsonschema.NewStringLoader(jsonText),
	)
	if err != nil {
		return nil, apperrors.NewExtraction(text, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, apperrors.NewExtraction(text, fmt.Errorf("schema violation: %s", strings.Join(problems, "; ")))
	}

	var input domain.ProposalInput
	if err := json.Unmarshal([]byte(jsonText), &input); err != nil {
		return nil, apperrors.NewExtraction(text, err)
	}
	return &input, nil
}
