package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	apperrors "abcretail/internal/errors"
)

const (
	customersRoute = "customers"
	productsRoute  = "products"
	ordersRoute    = "orders"
	uploadsRoute   = "uploads/proof-of-payment"
)

// Client implements FunctionsAPI over HTTP. Base URL and timeout are fixed at
// construction and never mutated, so a single Client is safe to share across
// concurrent callers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

var _ FunctionsAPI = (*Client)(nil)

func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    normalized,
		logger:     logger,
	}, nil
}

// normalizeBaseURL guarantees the configured address ends in a single "/api/"
// segment, whether the operator supplied "host", "host/" or "host/api".
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("functions base URL must not be empty")
	}
	if _, err := url.Parse(raw); err != nil {
		return "", fmt.Errorf("invalid functions base URL %q: %w", raw, err)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	if !strings.HasSuffix(raw, "/api/") {
		raw += "api/"
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, route string) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, route, "", nil)
}

func (c *Client) send(ctx context.Context, method, route, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+route, body)
	if err != nil {
		return nil, apperrors.NewRequestError(0, "building request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug("calling functions backend",
		zap.String("method", method),
		zap.String("route", route))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewRequestError(0, fmt.Sprintf("%s %s failed", method, route), err)
	}
	return resp, nil
}

func (c *Client) sendJSON(ctx context.Context, method, route string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewRequestError(0, "encoding request body", err)
	}
	return c.send(ctx, method, route, "application/json", bytes.NewReader(data))
}

const maxExcerptBytes = 512

// ensureSuccess classifies the response status. Callers handle the 404 case
// for single-resource reads before calling this.
func ensureSuccess(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return apperrors.NewRequestError(resp.StatusCode, bodyExcerpt(resp.Body), nil)
}

func bodyExcerpt(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxExcerptBytes))
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		return "(no response body)"
	}
	return strings.TrimSpace(string(data))
}

func decodeInto(resp *http.Response, what string, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return apperrors.NewDecodeError("decoding "+what+" response", err)
	}
	return nil
}
