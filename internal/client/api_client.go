package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/studiofront/designer-console/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionSource supplies the current login. The token is read fresh on
// every call, never cached, so logout/login is picked up by the next call.
type SessionSource interface {
	Current() (*session.Session, error)
}

// APIClient handles communication with the backend API. Read operations
// degrade to empty results on failure; write operations return the error
// to the caller.
type APIClient struct {
	baseURL    string
	authURL    string
	sessions   SessionSource
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, authURL string, timeout time.Duration, sessions SessionSource, logger *zap.Logger) *APIClient {
	return &APIClient{
		baseURL:  baseURL,
		authURL:  authURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doJSON issues one request and decodes the JSON response into out (when
// out is non-nil). When authed is true the stored session token is
// attached; a missing session fails before any network I/O.
func (c *APIClient) doJSON(ctx context.Context, method, url string, body, out interface{}, authed bool) error {
	var token string
	if authed {
		sess, err := c.sessions.Current()
		if err != nil {
			return err
		}
		token = sess.Token
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// The backend expects the raw token, not a "Bearer " prefix
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classifyError(method, url, resp.StatusCode, respBody)
	}

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// classifyError maps a non-2xx response to a typed error
func (c *APIClient) classifyError(method, url string, statusCode int, body []byte) error {
	errMsg := fmt.Sprintf("backend returned status %d: %s", statusCode, string(body))

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		c.logger.Error("Authentication failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", statusCode),
		)
		return &AuthError{Message: errMsg, StatusCode: statusCode}
	case http.StatusTooManyRequests:
		c.logger.Warn("Rate limited",
			zap.String("url", url),
			zap.Int("status_code", statusCode),
		)
		return &RateLimitError{Message: errMsg, StatusCode: statusCode}
	case http.StatusBadRequest:
		c.logger.Error("Invalid request",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", statusCode),
			zap.String("response", string(body)),
		)
		return &BadRequestError{Message: errMsg, StatusCode: statusCode}
	default:
		c.logger.Error("Backend error",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", statusCode),
			zap.String("response", string(body)),
		)
		return &BackendError{Message: errMsg, StatusCode: statusCode}
	}
}

// Error types
type AuthError struct {
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	return e.Message
}

type RateLimitError struct {
	Message    string
	StatusCode int
}

func (e *RateLimitError) Error() string {
	return e.Message
}

type BadRequestError struct {
	Message    string
	StatusCode int
}

func (e *BadRequestError) Error() string {
	return e.Message
}

type BackendError struct {
	Message    string
	StatusCode int
}

func (e *BackendError) Error() string {
	return e.Message
}
