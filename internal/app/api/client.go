package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"opsdeck/internal/app/errors"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// Client is the HTTP client for the platform REST API. All state-changing
// requests carry the CSRF token obtained lazily from the csrf endpoint.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     logger.Logger

	csrfMu   sync.Mutex
	csrfTok  string
	csrfDone bool
}

// NewClient creates a new API client from configuration
func NewClient(cfg *config.Config, log logger.Logger) (*Client, error) {
	token, err := cfg.Token()
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.API.BaseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: cfg.API.Timeout},
		log:     log.WithComponent("api"),
	}, nil
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ensureCSRF fetches the CSRF token once and caches it for the lifetime
// of the client
func (c *Client) ensureCSRF(ctx context.Context) (string, error) {
	c.csrfMu.Lock()
	defer c.csrfMu.Unlock()

	if c.csrfDone {
		return c.csrfTok, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/csrf", nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrRequestFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == config.CSRFCookieName {
			c.csrfTok = cookie.Value
			c.csrfDone = true

			return c.csrfTok, nil
		}
	}

	return "", errors.ErrCSRFTokenMissing
}

// do performs one request and returns the raw body and status code.
// Absolute URLs (pagination links) are used as-is, everything else is
// resolved against the base URL.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, int, error) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		url = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", errors.ErrRequestFailed, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(config.AuthHeader, "Token "+c.token)

	if method != http.MethodGet && method != http.MethodHead {
		csrf, err := c.ensureCSRF(ctx)
		if err != nil {
			return nil, 0, err
		}

		req.Header.Set(config.CSRFHeader, csrf)
		req.AddCookie(&http.Cookie{Name: config.CSRFCookieName, Value: csrf})
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", errors.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %w", errors.ErrRequestFailed, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("request completed")

	return raw, resp.StatusCode, nil
}

// getJSON performs a GET and decodes a 200 response into T
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T

	raw, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return out, err
	}

	switch {
	case status == http.StatusNotFound:
		return out, fmt.Errorf("%w: %s", errors.ErrNotFound, path)
	case status != http.StatusOK:
		return out, fmt.Errorf("%w: %d from %s", errors.ErrUnexpectedStatus, status, path)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %w", errors.ErrDecodeResponse, err)
	}

	return out, nil
}

// mutationOpts adjusts how mutate interprets error responses
type mutationOpts struct {
	// conflictAttr and conflictDetail turn a 409 into a synthetic
	// field-level validation error instead of a transport failure
	conflictAttr   string
	conflictDetail string
}

// mutate performs a state-changing request and maps the response into
// the uniform Result shape: success payload, structured validation
// errors, or a propagated transport/not-found error
func mutate[T any](ctx context.Context, c *Client, method, path string, payload any, opts mutationOpts) (Result[T], error) {
	var body io.Reader

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Result[T]{}, fmt.Errorf("%w: %w", errors.ErrEncodeRequest, err)
		}

		body = bytes.NewReader(encoded)
	}

	raw, status, err := c.do(ctx, method, path, body)
	if err != nil {
		return Result[T]{}, err
	}

	switch {
	case status >= 200 && status < 300:
		var data T
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &data); err != nil {
				return Result[T]{}, fmt.Errorf("%w: %w", errors.ErrDecodeResponse, err)
			}
		}

		return Result[T]{Data: &data}, nil

	case status == http.StatusNotFound:
		return Result[T]{}, fmt.Errorf("%w: %s", errors.ErrNotFound, path)

	case status == http.StatusConflict && opts.conflictAttr != "":
		return Result[T]{
			Errors:   conflictError(opts.conflictAttr, opts.conflictDetail),
			UserData: payload,
		}, nil

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		return Result[T]{Errors: parseValidationError(raw), UserData: payload}, nil

	default:
		return Result[T]{}, fmt.Errorf("%w: %d from %s", errors.ErrUnexpectedStatus, status, path)
	}
}
