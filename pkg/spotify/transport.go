package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// apiErrorBody is the error envelope returned by the Web API.
type apiErrorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// validator is implemented by response envelopes that declare required
// fields. It runs after decoding.
type validator interface {
	validate() error
}

// get makes an authenticated GET request to path and decodes the JSON body
// into out.
//
// It handles:
// - Token acquisition (refreshing if expired)
// - Query string construction
// - Status code classification into error kinds
// - Response decoding and shape validation
//
// No request is retried. A 401 drops the held token so the next call
// exchanges credentials again.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	endpoint := strings.TrimSuffix(c.baseURL, "/") + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	c.logDebugf("spotify: GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "spotweb/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: ErrRemoteService, Err: fmt.Errorf("http request failed: %w", err)}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return &Error{Kind: ErrRemoteService, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			Kind:       errorKindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
		if apiErr.Kind == ErrRateLimited {
			apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.tokens.Invalidate()
		}
		c.logDebugf("spotify: GET %s failed: %v", path, apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return formatError(fmt.Errorf("failed to parse JSON response: %w", err))
	}
	if v, ok := out.(validator); ok {
		if err := v.validate(); err != nil {
			return formatError(err)
		}
	}

	return nil
}

// errorMessage extracts the message from an API error body, falling back
// to the raw body text.
func errorMessage(body []byte) string {
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

// parseRetryAfter parses a Retry-After header given either as seconds or as
// an HTTP date. Returns 0 if the header is absent or unparseable.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}

	if t, err := http.ParseTime(value); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}

	return 0
}
