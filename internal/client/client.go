// Package client is the mutation gateway of the canvas: a thin HTTP client
// for the /api/v1 persistence boundary. Every method performs exactly one
// remote write or read, no retries, no coalescing; failures come back as
// coded AppErrors so callers can branch on validation/duplicate/not_found
// without string matching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/paddynes2/stride-process-app/internal/models"
	appErr "github.com/paddynes2/stride-process-app/pkg/errors"
)

// Fields is a partial field map for PATCH calls. The server enforces the
// per-entity allow-list; unknown keys are ignored there.
type Fields map[string]any

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the uniform response body of every endpoint.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return appErr.Wrap(err, appErr.CodeUnknown, "encode request body")
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeUnknown, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeUnknown, fmt.Sprintf("%s %s failed", method, path))
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return appErr.Wrap(err, appErr.CodeUnknown, fmt.Sprintf("unexpected response from %s %s", method, path))
	}
	if env.Error != nil {
		return appErr.New(appErr.Code(env.Error.Code), env.Error.Message)
	}
	if out != nil {
		if env.Data == nil {
			return appErr.New(appErr.CodeUnknown, "API returned null data without an error")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return appErr.Wrap(err, appErr.CodeUnknown, "decode response data")
		}
	}
	return nil
}

// --- Workspaces ---

func (c *Client) ListWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	var out []models.Workspace
	if err := c.do(ctx, http.MethodGet, "/api/v1/workspaces", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWorkspace returns the workspace with its tabs ordered by position.
func (c *Client) GetWorkspace(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	var out models.Workspace
	if err := c.do(ctx, http.MethodGet, "/api/v1/workspaces/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error) {
	var out models.Workspace
	if err := c.do(ctx, http.MethodPost, "/api/v1/workspaces", Fields{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Tabs ---

func (c *Client) ListTabs(ctx context.Context, workspaceID uuid.UUID) ([]models.Tab, error) {
	var out []models.Tab
	path := "/api/v1/tabs?workspace_id=" + url.QueryEscape(workspaceID.String())
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTab(ctx context.Context, workspaceID uuid.UUID, name string) (*models.Tab, error) {
	var out models.Tab
	body := Fields{"workspace_id": workspaceID, "name": name}
	if err := c.do(ctx, http.MethodPost, "/api/v1/tabs", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTab(ctx context.Context, id uuid.UUID, fields Fields) (*models.Tab, error) {
	var out models.Tab
	if err := c.do(ctx, http.MethodPatch, "/api/v1/tabs/"+id.String(), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTab(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tabs/"+id.String(), nil, nil)
}

// --- Sections ---

func (c *Client) ListSections(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Section, error) {
	var out []models.Section
	if err := c.do(ctx, http.MethodGet, scopedPath("/api/v1/sections", workspaceID, tabID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSection(ctx context.Context, fields Fields) (*models.Section, error) {
	var out models.Section
	if err := c.do(ctx, http.MethodPost, "/api/v1/sections", fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSection(ctx context.Context, id uuid.UUID, fields Fields) (*models.Section, error) {
	var out models.Section
	if err := c.do(ctx, http.MethodPatch, "/api/v1/sections/"+id.String(), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSection(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/sections/"+id.String(), nil, nil)
}

// --- Steps ---

func (c *Client) ListSteps(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Step, error) {
	var out []models.Step
	if err := c.do(ctx, http.MethodGet, scopedPath("/api/v1/steps", workspaceID, tabID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateStep(ctx context.Context, fields Fields) (*models.Step, error) {
	var out models.Step
	if err := c.do(ctx, http.MethodPost, "/api/v1/steps", fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStep(ctx context.Context, id uuid.UUID, fields Fields) (*models.Step, error) {
	var out models.Step
	if err := c.do(ctx, http.MethodPatch, "/api/v1/steps/"+id.String(), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStep(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/steps/"+id.String(), nil, nil)
}

// --- Connections ---

func (c *Client) ListConnections(ctx context.Context, workspaceID, tabID uuid.UUID) ([]models.Connection, error) {
	var out []models.Connection
	if err := c.do(ctx, http.MethodGet, scopedPath("/api/v1/connections", workspaceID, tabID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateConnection(ctx context.Context, workspaceID, tabID, sourceStepID, targetStepID uuid.UUID) (*models.Connection, error) {
	var out models.Connection
	body := Fields{
		"workspace_id":   workspaceID,
		"tab_id":         tabID,
		"source_step_id": sourceStepID,
		"target_step_id": targetStepID,
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/connections", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/connections/"+id.String(), nil, nil)
}

func scopedPath(base string, workspaceID, tabID uuid.UUID) string {
	q := url.Values{}
	q.Set("workspace_id", workspaceID.String())
	if tabID != uuid.Nil {
		q.Set("tab_id", tabID.String())
	}
	return base + "?" + q.Encode()
}
