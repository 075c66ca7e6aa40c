package tracing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.smith.langchain.com/api/v1"

// Config holds the telemetry sink credentials.
type Config struct {
	Endpoint string
	Project  string
	APIKey   string
}

// Run is one recorded model call.
type Run struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	RunType     string            `json:"run_type"`
	SessionName string            `json:"session_name,omitempty"`
	Inputs      map[string]string `json:"inputs"`
	Outputs     map[string]string `json:"outputs,omitempty"`
	Error       string            `json:"error,omitempty"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
}

// Client posts run records to a LangSmith-compatible endpoint.
type Client struct {
	cfg    Config
	client *http.Client
}

// New validates the config and builds a client.
func New(cfg Config, client *http.Client) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("tracing config must include api_key")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{cfg: cfg, client: client}, nil
}

// Record posts one run. Callers treat failures as log-only; telemetry
// must never fail a generation.
func (c *Client) Record(ctx context.Context, run Run) error {
	run.RunType = "llm"
	if run.SessionName == "" {
		run.SessionName = c.cfg.Project
	}

	body, err := json.Marshal(run)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/runs", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tracing endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
