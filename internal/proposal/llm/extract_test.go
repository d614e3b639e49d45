package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenlaunch/proposal-backend/config"
	"github.com/wenlaunch/proposal-backend/internal/apperrors"
)

const validExtraction = `{
	"client_name": "Sunrise Bakery",
	"project_summary": "A storefront site.",
	"deliverables": [{"name": "Homepage", "description": "Landing page"}],
	"timeline": [{"phase": "Design", "duration": "2 weeks", "description": "Visuals"}],
	"client_needs": ["Logo files"],
	"technical_requirements": {"cms": "WordPress", "integrations": [], "features": []},
	"payment_milestones": [{"milestone": "Upon agreement", "percentage": 50}, {"milestone": "Upon completion", "percentage": 50}]
}`

// fakeAnthropic returns a server that answers every messages call with the
// given text block, and records the last request body.
func fakeAnthropic(t *testing.T, text string) (*httptest.Server, *map[string]any) {
	t.Helper()
	lastReq := &map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/messages", r.URL.Path)
		require.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NotEmpty(t, r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(lastReq))

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": text}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, lastReq
}

func testClient(baseURL string) *Client {
	c := NewClient(config.AnthropicConfig{APIKey: "test-key", Model: "test-model", MaxTokens: 1000})
	c.BaseURL = baseURL
	return c
}

func TestExtract_BareJSON(t *testing.T) {
	srv, lastReq := fakeAnthropic(t, validExtraction)

	input, err := testClient(srv.URL).Extract(context.Background(), "we talked about a bakery site", "")
	require.NoError(t, err)

	assert.Equal(t, "Sunrise Bakery", input.ClientName)
	require.Len(t, input.PaymentMilestones, 2)
	assert.Equal(t, float64(50), input.PaymentMilestones[0].Percentage)
	assert.Equal(t, "WordPress", input.TechnicalRequirements.CMS)

	// the transcript must be inside the prompt sent upstream
	msgs := (*lastReq)["messages"].([]any)
	prompt := msgs[0].(map[string]any)["content"].(string)
	assert.Contains(t, prompt, "we talked about a bakery site")
}

func TestExtract_FencedJSONParsesIdentically(t *testing.T) {
	bareSrv, _ := fakeAnthropic(t, validExtraction)
	fencedSrv, _ := fakeAnthropic(t, "```json\n"+validExtraction+"\n```")

	bare, err := testClient(bareSrv.URL).Extract(context.Background(), "transcript", "")
	require.NoError(t, err)
	fenced, err := testClient(fencedSrv.URL).Extract(context.Background(), "transcript", "")
	require.NoError(t, err)

	assert.Equal(t, bare, fenced)
}

func TestExtract_NotesAppendedToPrompt(t *testing.T) {
	srv, lastReq := fakeAnthropic(t, validExtraction)

	_, err := testClient(srv.URL).Extract(context.Background(), "transcript", "budget is firm at 5k")
	require.NoError(t, err)

	msgs := (*lastReq)["messages"].([]any)
	prompt := msgs[0].(map[string]any)["content"].(string)
	assert.Contains(t, prompt, "Additional Notes:")
	assert.Contains(t, prompt, "budget is firm at 5k")
}

func TestExtract_SchemaViolation(t *testing.T) {
	// missing almost every required key
	srv, _ := fakeAnthropic(t, `{"client_name": "Sunrise Bakery"}`)

	_, err := testClient(srv.URL).Extract(context.Background(), "transcript", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeExtractionFailed, apperrors.CodeOf(err))

	// the raw model output travels with the error for diagnostics
	ae := apperrors.AsAppError(err)
	assert.Contains(t, ae.Details, "Sunrise Bakery")
}

func TestExtract_NonJSONResponse(t *testing.T) {
	srv, _ := fakeAnthropic(t, "Sorry, I can't help with that.")

	_, err := testClient(srv.URL).Extract(context.Background(), "transcript", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeExtractionFailed, apperrors.CodeOf(err))
}

func TestExtract_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "overloaded_error", "message": "try later"},
		})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Extract(context.Background(), "transcript", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeUpstreamFailed, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "overloaded_error")
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
