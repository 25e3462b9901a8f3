package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second

	chatPath   = "/api/chat"
	healthPath = "/api/health"
)

// Client handles advisor API interactions
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient creates a new advisor API client
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		UserAgent: "knowli-cli/1.0",
	}
}

// Chat sends the full conversation to the advisor API and returns its reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		slog.Error("Failed to marshal chat request", "error", err)
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	slog.Debug("Sending chat request",
		"url", c.BaseURL+chatPath,
		"messages_count", len(req.Messages),
		"request_size", len(jsonData))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+chatPath, bytes.NewReader(jsonData))
	if err != nil {
		slog.Error("Failed to create HTTP request", "error", err)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		slog.Error("Failed to send chat request", "error", err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Failed to read response body", "error", err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	slog.Debug("Received chat response",
		"status_code", resp.StatusCode,
		"response_size", len(body))

	if resp.StatusCode != http.StatusOK {
		preview := string(body)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		slog.Error("Advisor API returned error status",
			"status_code", resp.StatusCode,
			"response_preview", preview)

		var apiErr ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error == "" {
			return nil, fmt.Errorf("chat request failed with status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("advisor API error: %s", apiErr.Error)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		slog.Error("Failed to unmarshal chat response", "error", err)
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	slog.Debug("Chat request completed",
		"text_length", len(chatResp.Text),
		"products_count", len(chatResp.Products))

	return &chatResp, nil
}

// Health checks whether the advisor API is reachable.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}
	return nil
}

// SetTimeout configures the HTTP client timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}
