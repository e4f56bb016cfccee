// Package worker talks to the external job worker.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hecho-core/internal/pkg/config"
	"hecho-core/internal/pkg/errs"
)

const (
	runPath      = "/v1/jobs/run"
	maxErrorBody = 4 << 10
)

// DispatchError is a non-2xx answer from the worker.
type DispatchError struct {
	StatusCode int
	Body       string
}

func (e *DispatchError) Error() string {
	if e.Body == "" {
		return "worker responded " + strconv.Itoa(e.StatusCode)
	}
	return "worker responded " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.WorkerConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

type runRequest struct {
	OrgID string `json:"orgId"`
	JobID string `json:"jobId"`
}

// Run asks the worker to start jobID. Any 2xx is success. No retries.
func (c *Client) Run(ctx context.Context, orgID, jobID string) error {
	body, err := json.Marshal(runRequest{OrgID: orgID, JobID: jobID})
	if err != nil {
		return errs.Wrap(err, "encode run request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runPath, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build run request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "call worker")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &DispatchError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
}
