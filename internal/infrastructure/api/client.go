// Package api is the JSON-over-HTTP transport to the wellbeing backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wellbeing-client/config"
	"wellbeing-client/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries a per-request id for correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

// Credentials supplies the bearer token and is told when the backend rejects it.
type Credentials interface {
	AccessToken(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

type Client struct {
	baseURL     string
	authURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	credentials Credentials
	log         *logrus.Logger
}

func NewClient(log *logrus.Logger, cfg config.APIConfig, credentials Credentials) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		authURL:     strings.TrimRight(cfg.AuthURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(limit, burst),
		credentials: credentials,
		log:         log,
	}
}

// Get decodes the JSON response of an authenticated GET into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}, fallback string) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.doJSON(ctx, http.MethodGet, path, nil, out, fallback)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}, fallback string) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, fallback)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}, fallback string) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out, fallback)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}, fallback string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out, fallback)
}

// PostForm sends an unauthenticated form to the auth server. A 401 here means
// wrong credentials and never touches the session.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out interface{}, fallback string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.send(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return response.Decode(status, body, fallback)
	}
	return decodeBody(status, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}, fallback string) error {
	token, err := c.credentials.AccessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	status, body, err := c.send(req)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		if err := c.credentials.Invalidate(ctx); err != nil {
			c.log.Warnf("Failed to clear rejected session: %+v", err)
		}
		return response.ErrSessionExpired
	}
	if status < 200 || status >= 300 {
		return response.Decode(status, body, fallback)
	}
	return decodeBody(status, body, out)
}

// send waits for the rate limiter, performs the request and reads the body.
// Transport failures come back as a status 0 APIError.
func (c *Client) send(req *http.Request) (int, []byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return 0, nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0, nil, err
		}
		c.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.Path,
		}).Debugf("Request failed: %v", err)
		return 0, nil, response.Connection(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, response.Connection(err)
	}

	c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.Path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start).String(),
	}).Debug("API request")

	return resp.StatusCode, body, nil
}

func decodeBody(status int, body []byte, out interface{}) error {
	if out == nil || status == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
