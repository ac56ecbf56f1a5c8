package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// TokenStore persists the access token between runs. A nil token store
// means every request goes out unauthenticated.
type TokenStore interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}

// Client talks to the task API. All methods are safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenStore, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL + apiPrefix,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do performs one request/response cycle. Bodies are JSON both ways; out may
// be nil for operations whose response body is irrelevant (e.g. DELETE).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			c.log.Warn("failed to read stored token", zap.Error(err))
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) handleError(method, path string, resp *http.Response) error {
	var errBody struct {
		Detail string `json:"detail"`
	}
	// A non-JSON error body leaves Detail empty; callers fall back to a
	// generic message.
	_ = json.NewDecoder(resp.Body).Decode(&errBody)

	if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
		// Token expired or revoked. Drop it so the next run starts clean.
		if err := c.tokens.Clear(); err != nil {
			c.log.Warn("failed to clear stored token", zap.Error(err))
		}
	}

	c.log.Debug("request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("detail", errBody.Detail),
	)
	return &Error{Status: resp.StatusCode, Detail: errBody.Detail}
}
