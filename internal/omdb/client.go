package omdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service is the collaborator surface consumed by the UI and CLI.
// It is implemented by *Client and can be faked in tests.
type Service interface {
	Search(ctx context.Context, query string, page int) (SearchPage, error)
	Details(ctx context.Context, id string) (MovieDetail, error)
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

const (
	DefaultBaseURL   = "https://www.omdbapi.com/"
	defaultUserAgent = "filmfinder/0.1"
	defaultTimeout   = 10 * time.Second
	maxBodyBytes     = 4 << 20
)

// Options configure a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client // overrides Timeout when set
	Logger     *slog.Logger
}

// Client talks to the OMDb HTTP API. It is safe for concurrent use.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, fmt.Errorf("api key is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:   base,
		apiKey:    key,
		http:      httpClient,
		userAgent: userAgent,
		logger:    logger.With("component", "omdb"),
	}, nil
}

// get issues a single GET with params and returns the raw body. Failures are
// already classified as *Error.
func (c *Client) get(ctx context.Context, op string, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)
	reqURL := *c.baseURL
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, newError(op, KindInvalidRequest, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "op", op, "error", err)
		return nil, newError(op, KindTransport, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, newError(op, KindTransport, fmt.Errorf("read response: %w", err))
	}
	c.logger.Debug("request completed",
		"op", op,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(started))

	// OMDb reports client errors (bad key, bad id) as JSON with a 4xx
	// status, so only server failures are treated as transport errors.
	if resp.StatusCode >= 500 {
		return nil, newError(op, KindTransport, fmt.Errorf("api returned status %d", resp.StatusCode))
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
