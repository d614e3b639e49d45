// Package crm is a passthrough to the Notion database used as the studio's
// ad-hoc CRM. Notion is treated as an opaque page store; this package only
// maps between its property shapes and the flat Entry object.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wenlaunch/proposal-backend/config"
	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/metrics"
)

const notionVersion = "2022-06-28"

// Client calls the Notion API for a single fixed database.
type Client struct {
	// BaseURL is overridable so tests can point at an httptest server.
	BaseURL string

	apiKey     string
	databaseID string
	http       *http.Client
}

// NewClient builds a Notion client from config.
func NewClient(cfg config.NotionConfig) *Client {
	return &Client{
		BaseURL:    "https://api.notion.com/v1",
		apiKey:     cfg.APIKey,
		databaseID: cfg.DatabaseID,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether Notion credentials are configured.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.databaseID != ""
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ObserveUpstream("notion", time.Since(start), err)
	if err != nil {
		return apperrors.NewUpstream("notion", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUpstream("notion", err)
	}
	if resp.StatusCode >= 400 {
		return apperrors.NewUpstream("notion", fmt.Errorf("status %d: %s", resp.StatusCode, respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return apperrors.NewUpstream("notion", fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

// List queries all entries sorted by name, plus the Status and Lead Source
// option lists from the database metadata.
func (c *Client) List(ctx context.Context) (*ListResponse, error) {
	var queryResp struct {
		Results []page `json:"results"`
	}
	err := c.do(ctx, http.MethodPost, "/databases/"+c.databaseID+"/query", map[string]any{
		"sorts":     []map[string]any{{"property": "Name", "direction": "ascending"}},
		"page_size": 100,
	}, &queryResp)
	if err != nil {
		return nil, err
	}

	var dbResp struct {
		Properties struct {
			Status struct {
				Status struct {
					Options []Option `json:"options"`
				} `json:"status"`
			} `json:"Status"`
			LeadSource struct {
				Select struct {
					Options []Option `json:"options"`
				} `json:"select"`
			} `json:"Lead Source"`
		} `json:"properties"`
	}
	if err := c.do(ctx, http.MethodGet, "/databases/"+c.databaseID, nil, &dbResp); err != nil {
		return nil, err
	}

	out := &ListResponse{
		Clients:           make([]Entry, 0, len(queryResp.Results)),
		StatusOptions:     dbResp.Properties.Status.Status.Options,
		LeadSourceOptions: dbResp.Properties.LeadSource.Select.Options,
	}
	for _, p := range queryResp.Results {
		out.Clients = append(out.Clients, parsePage(p))
	}
	return out, nil
}

// Create adds a new entry. Status defaults to "Contacted"; optional fields
// are only written when supplied.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Entry, error) {
	status := req.Status
	if status == "" {
		status = "Contacted"
	}

	properties := map[string]any{
		"Name":    titleProp(req.Name),
		"Company": richTextProp(req.Company),
		"Status":  statusProp(status),
	}
	if req.Email != "" {
		properties["Email"] = map[string]any{"email": req.Email}
	}
	if req.DealValue != "" {
		properties["Deal Value"] = richTextProp(req.DealValue)
	}
	if req.LeadSource != "" {
		properties["Lead Source"] = map[string]any{"select": map[string]any{"name": req.LeadSource}}
	}
	if req.Summary != "" {
		properties["Summary"] = richTextProp(req.Summary)
	}

	var created page
	err := c.do(ctx, http.MethodPost, "/pages", map[string]any{
		"parent":     map[string]any{"database_id": c.databaseID},
		"properties": properties,
	}, &created)
	if err != nil {
		return nil, err
	}

	entry := parsePage(created)
	return &entry, nil
}

// Update patches the supplied fields of an entry. Empty strings clear
// email, lead source, and discovery call.
func (c *Client) Update(ctx context.Context, req UpdateRequest) (*Entry, error) {
	if req.ID == "" {
		return nil, apperrors.NewValidation("id is required")
	}

	properties := map[string]any{}
	if req.Name != nil {
		properties["Name"] = titleProp(*req.Name)
	}
	if req.Company != nil {
		properties["Company"] = richTextProp(*req.Company)
	}
	if req.Email != nil {
		if *req.Email == "" {
			properties["Email"] = map[string]any{"email": nil}
		} else {
			properties["Email"] = map[string]any{"email": *req.Email}
		}
	}
	if req.Status != nil {
		properties["Status"] = statusProp(*req.Status)
	}
	if req.DealValue != nil {
		properties["Deal Value"] = richTextProp(*req.DealValue)
	}
	if req.LeadSource != nil {
		if *req.LeadSource == "" {
			properties["Lead Source"] = map[string]any{"select": nil}
		} else {
			properties["Lead Source"] = map[string]any{"select": map[string]any{"name": *req.LeadSource}}
		}
	}
	if req.DiscoveryCall != nil {
		if *req.DiscoveryCall == "" {
			properties["Discovery Call"] = map[string]any{"date": nil}
		} else {
			properties["Discovery Call"] = map[string]any{"date": map[string]any{"start": *req.DiscoveryCall}}
		}
	}
	if req.Summary != nil {
		properties["Summary"] = richTextProp(*req.Summary)
	}
	if req.Communication != nil {
		properties["Communication"] = richTextProp(*req.Communication)
	}

	var updated page
	err := c.do(ctx, http.MethodPatch, "/pages/"+req.ID, map[string]any{
		"properties": properties,
	}, &updated)
	if err != nil {
		return nil, err
	}

	entry := parsePage(updated)
	return &entry, nil
}
