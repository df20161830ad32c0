package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/protocol"
)

// RemoteBackend forwards every call as an authenticated HTTP request to
// the privileged host agent. Transport errors and non-2xx statuses come
// back as *AgentError; there is no fallback to the local backend.
type RemoteBackend struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

func NewRemoteBackend(baseURL, token string, timeout time.Duration, logger *zap.Logger) *RemoteBackend {
	return &RemoteBackend{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (b *RemoteBackend) Name() string { return "remote" }

func (b *RemoteBackend) SendInput(ctx context.Context, ev protocol.InputEvent) error {
	_, err := b.do(ctx, http.MethodPost, "/api/input", ev)
	return err
}

func (b *RemoteBackend) Wake(ctx context.Context) (json.RawMessage, error) {
	return b.do(ctx, http.MethodPost, "/api/wake", struct{}{})
}

func (b *RemoteBackend) KeepAlive(ctx context.Context) error {
	_, err := b.do(ctx, http.MethodPost, "/api/keepalive", struct{}{})
	return err
}

func (b *RemoteBackend) Health(ctx context.Context) (json.RawMessage, error) {
	return b.do(ctx, http.MethodGet, "/api/health", nil)
}

func (b *RemoteBackend) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal agent request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build agent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &AgentError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &AgentError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AgentError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
