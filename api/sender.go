package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"monitor-agent/models"
)

const (
	detailPath  = "/monitor/detail"
	runtimePath = "/monitor/runtime"
)

// Sender posts monitor records to the server.
type Sender struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewSender(baseURL, token string) *Sender {
	return &Sender{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type APIResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SendBaseDetail uploads the static inventory.
func (s *Sender) SendBaseDetail(ctx context.Context, detail models.BaseDetail) error {
	return s.post(ctx, detailPath, detail)
}

// SendRuntimeDetail uploads one runtime reading.
func (s *Sender) SendRuntimeDetail(ctx context.Context, report models.Report) error {
	return s.post(ctx, runtimePath, report)
}

func (s *Sender) post(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		var apiResp APIResponse
		if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Message != "" {
			return fmt.Errorf("API error (%d): %s", resp.StatusCode, apiResp.Message)
		}
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
