package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/tecskill/rtx-cli/common/printer"
	"github.com/tecskill/rtx-cli/internal/services/session"
)

const (
	jitterDivisor = 2 // Divisor used to calculate maximum jitter range

	headerServiceToken = "X-API-Token"
)

// NewClient creates a new API client against the given base URL. The session
// service is consulted on every authenticated call; it is injected rather than
// global so tests can substitute a double.
func NewClient(baseURL, serviceToken string, sess session.ServiceInterface) ClientInterface {
	return &Client{
		BaseURL:      baseURL,
		ServiceToken: serviceToken,
		Session:      sess,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// DefaultRequestConfig returns sensible defaults.
func DefaultRequestConfig() RequestConfig {
	return RequestConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		Timeout:    30 * time.Second,
	}
}

// sendRequest sends an authenticated HTTP request and returns the response
// body. It fails fast without touching the network when no session is active.
func (c *Client) sendRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	req, err := c.prepareRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	return c.makeRequestWithRetries(ctx, req)
}

// prepareRequest creates an HTTP request with proper headers and authentication.
func (c *Client) prepareRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Request, error) {
	token := c.Session.Token()
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var bodyReader io.Reader

	if body != nil && method != http.MethodGet {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, eris.Wrap(err, "Failed to marshal request body")
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerServiceToken, c.ServiceToken)

	return req, nil
}

// makeRequestWithRetries executes the HTTP request with exponential backoff
// retry logic. Auth rejections are never retried.
func (c *Client) makeRequestWithRetries(ctx context.Context, req *http.Request) ([]byte, error) {
	config := DefaultRequestConfig()
	var lastErr error

	for i := range config.MaxRetries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			if i > 0 {
				printer.MoveCursorUp(1)
				printer.ClearToEndOfLine()
				printer.Infoln("Retrying...                                                                  ")
			}

			respBody, err := c.doRequest(req)
			if err == nil {
				return respBody, nil
			}

			// Don't retry if unauthorized
			if strings.Contains(err.Error(), "Unauthorized.") || strings.Contains(err.Error(), "Forbidden.") {
				return nil, err
			}

			if !c.isRetryableError(err) {
				return nil, err
			}

			if i < config.MaxRetries-1 { // Don't print retry message on last attempt
				delay := c.exponentialBackoffWithJitter(config.BaseDelay, i)
				prompt := fmt.Sprintf("Failed to make request [%s]: %s. Will retry...", req.URL, err.Error())
				printer.MoveCursorUp(1)
				printer.Errorln(prompt)

				// Use timer instead of Sleep to handle cancellation
				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil, ctx.Err()
				case <-timer.C:
				}
			} else {
				printer.MoveCursorUp(1)
				printer.ClearToEndOfLine()
			}
			lastErr = err
		}
	}

	return nil, eris.Wrapf(lastErr, "Failed after %d retries", config.MaxRetries)
}

// doRequest executes a single HTTP request.
func (c *Client) doRequest(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, eris.New("401 Unauthorized.")
		}
		if resp.StatusCode == http.StatusForbidden {
			return nil, eris.New("403 Forbidden.")
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			return nil, eris.New(resp.Status)
		}
		return nil, eris.New(message)
	}

	return io.ReadAll(resp.Body)
}

// isRetryableError checks if the error is transient and should be retried.
func (c *Client) isRetryableError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	// Check HTTP status codes in error message (fallback)
	errorMsg := err.Error()
	return strings.Contains(errorMsg, "500") ||
		strings.Contains(errorMsg, "502") ||
		strings.Contains(errorMsg, "503") ||
		strings.Contains(errorMsg, "504") ||
		strings.Contains(errorMsg, "429")
}

// exponentialBackoffWithJitter calculates delay with exponential backoff and jitter.
func (c *Client) exponentialBackoffWithJitter(base time.Duration, attempt int) time.Duration {
	backoff := base * (1 << attempt)                                     // Exponential growth
	jitter := time.Duration(rand.Int63n(int64(backoff / jitterDivisor))) //nolint:gosec // it's safe to use rand here
	return backoff + jitter
}
