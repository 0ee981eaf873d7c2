package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	agendaview "github.com/lucasmrdev/meeting-planner/internal/view/agenda"
	"github.com/lucasmrdev/meeting-planner/internal/view/autosave"
)

// Client talks to the meeting API on behalf of the view engines. It
// carries the bearer token and anti-forgery token on every mutating
// request.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
	csrfToken   string
}

// New creates a client for the given API base URL
func New(baseURL, accessToken, csrfToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		accessToken: accessToken,
		csrfToken:   csrfToken,
	}
}

// SetCSRFToken replaces the anti-forgery token, e.g. after refresh
func (c *Client) SetCSRFToken(token string) {
	c.csrfToken = token
}

type envelope struct {
	Code    json.RawMessage `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// apiError is a non-2xx response from the server.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
	if c.csrfToken != "" && method != http.MethodGet {
		req.Header.Set("X-CSRF-Token", c.csrfToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connectivity failures surface as offline so the autosave
		// engine shows the right status.
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", autosave.ErrOffline, err)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		message := resp.Status
		if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr == nil && env.Message != "" {
			message = env.Message
		}
		return &apiError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// FetchCSRFToken requests a fresh anti-forgery token and installs it on
// the client.
func (c *Client) FetchCSRFToken(ctx context.Context) error {
	var data struct {
		Token string `json:"csrf_token"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/csrf", nil, &data); err != nil {
		return err
	}
	c.csrfToken = data.Token
	return nil
}

// SaveContentField writes one content field of a meeting
func (c *Client) SaveContentField(ctx context.Context, meetingID, field, content string) error {
	body := map[string]string{"field": field, "content": content}
	path := fmt.Sprintf("/v1/meetings/%s/content", meetingID)
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

type reorderData struct {
	Notice  string `json:"notice"`
	Agendas []struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Position int    `json:"position"`
	} `json:"agendas"`
}

// Reorder submits the full agenda ordering and returns the server's
// re-read list
func (c *Client) Reorder(ctx context.Context, meetingID string, positions []agendaview.Position) ([]agendaview.Item, error) {
	type pair struct {
		ID       string `json:"id"`
		Position int    `json:"position"`
	}
	pairs := make([]pair, len(positions))
	for i, p := range positions {
		pairs[i] = pair{ID: p.ID, Position: p.Position}
	}
	body := map[string]interface{}{"positions": pairs}

	var data reorderData
	path := fmt.Sprintf("/v1/meetings/%s/agendas/reorder", meetingID)
	if err := c.do(ctx, http.MethodPatch, path, body, &data); err != nil {
		return nil, err
	}

	items := make([]agendaview.Item, len(data.Agendas))
	for i, a := range data.Agendas {
		items[i] = agendaview.Item{ID: a.ID, Title: a.Title, Position: a.Position}
	}
	return items, nil
}

// UpdateTaskStatus submits a kanban move
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) error {
	body := map[string]string{"status": string(status)}
	path := fmt.Sprintf("/v1/tasks/%s/status", taskID)
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

// FieldSaver adapts the client to the autosave Saver interface for one
// meeting field.
type FieldSaver struct {
	client    *Client
	meetingID string
	field     string
}

// NewFieldSaver creates a saver bound to one meeting field
func NewFieldSaver(client *Client, meetingID, field string) *FieldSaver {
	return &FieldSaver{client: client, meetingID: meetingID, field: field}
}

// Save implements autosave.Saver
func (fs *FieldSaver) Save(ctx context.Context, content string) error {
	return fs.client.SaveContentField(ctx, fs.meetingID, fs.field, content)
}

// MeetingReorderer adapts the client to the agenda Reorderer interface.
type MeetingReorderer struct {
	client    *Client
	meetingID string
}

// NewMeetingReorderer creates a reorderer bound to one meeting
func NewMeetingReorderer(client *Client, meetingID string) *MeetingReorderer {
	return &MeetingReorderer{client: client, meetingID: meetingID}
}

// Reorder implements agenda.Reorderer
func (mr *MeetingReorderer) Reorder(ctx context.Context, positions []agendaview.Position) ([]agendaview.Item, error) {
	return mr.client.Reorder(ctx, mr.meetingID, positions)
}
