package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
)

const (
	DefaultServerURL = "http://localhost:8080"
	defaultTimeout   = 10 * time.Second
)

// Client is a controller for a robocleaner server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *log.Logger
}

type NewClientOptions struct {
	// ServerURL defaults to DefaultServerURL.
	ServerURL  string
	HTTPClient *http.Client
	Logger     *log.Logger
}

func NewClient(opts NewClientOptions) (*Client, error) {
	serverURL := opts.ServerURL
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.With("client")
	}

	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// StatusError is returned for responses the client has no use for.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// SubmitGoal asks the server to execute a move. A rejected goal is not an
// error: the response carries Accepted=false and the reason.
func (c *Client) SubmitGoal(ctx context.Context, moveType string) (*messages.GoalResponse, error) {
	resp := &messages.GoalResponse{}
	if err := c.do(ctx, http.MethodPost, "/v1/goals", &messages.GoalRequest{MoveType: moveType}, resp,
		http.StatusAccepted, http.StatusBadRequest, http.StatusConflict); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CancelGoal(ctx context.Context, goalID string) (*messages.CancelGoalResponse, error) {
	resp := &messages.CancelGoalResponse{}
	if err := c.do(ctx, http.MethodDelete, "/v1/goals/"+url.PathEscape(goalID), nil, resp,
		http.StatusAccepted, http.StatusConflict); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetGoal(ctx context.Context, goalID string) (*messages.GoalStatus, error) {
	resp := &messages.GoalStatus{}
	if err := c.do(ctx, http.MethodGet, "/v1/goals/"+url.PathEscape(goalID), nil, resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) BatteryStatus(ctx context.Context) (*messages.BatteryStatus, error) {
	resp := &messages.BatteryStatus{}
	if err := c.do(ctx, http.MethodGet, "/v1/battery", nil, resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) InitialState(ctx context.Context) (*messages.InitialStateResponse, error) {
	resp := &messages.InitialStateResponse{}
	if err := c.do(ctx, http.MethodGet, "/v1/initial-state", nil, resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) FieldMapRevealed(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/field-map/revealed", nil, nil, http.StatusAccepted)
}

func (c *Client) FieldMapCleaned(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/field-map/cleaned", nil, nil, http.StatusAccepted)
}

// FeedbackURL returns the websocket url of the feedback stream.
func (c *Client) FeedbackURL() string {
	u := *c.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/feedback"
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, expected ...int) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("%s %s %d", method, path, resp.StatusCode)

	if !contains(expected, resp.StatusCode) {
		errResp := &messages.ErrorResponse{}
		_ = json.NewDecoder(resp.Body).Decode(errResp)
		return &StatusError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func contains(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
