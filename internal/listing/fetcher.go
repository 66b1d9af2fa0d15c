package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// FetcherConfig controls the upstream listing request.
type FetcherConfig struct {
	// BaseURL is the fixed listing endpoint.
	BaseURL string
	// Limit is the fixed page size requested from upstream. There is no
	// pagination; one request covers the whole window we sync.
	Limit int
	// Timeout bounds the whole request including body read.
	Timeout time.Duration
	// UserAgent is sent on every request.
	UserAgent string
}

// Fetcher issues the single upstream GET and decodes the listing collection.
type Fetcher struct {
	client    *http.Client
	endpoint  string
	userAgent string
	logger    *zap.Logger
}

// NewFetcher builds a Fetcher for the configured endpoint.
func NewFetcher(cfg FetcherConfig, logger *zap.Logger) (*Fetcher, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("listing base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse listing base URL: %w", err)
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 500
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "meet-sync/1.0"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		endpoint:  u.String(),
		userAgent: ua,
		logger:    logger,
	}, nil
}

// Fetch issues one GET against the listing endpoint and returns the raw
// listing collection. Transport errors and non-2xx responses are returned to
// the caller so a retry wrapper can observe them. Body-shape problems are
// not retryable: they are logged and an empty collection is returned.
func (f *Fetcher) Fetch(ctx context.Context) ([]Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build listing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read listing response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("listing request returned status %d", resp.StatusCode)
	}

	return f.decode(body), nil
}

// decode extracts the listing collection from a 2xx body. The upstream
// occasionally returns the document double-encoded: a JSON string containing
// the escaped envelope instead of the envelope itself. Both shapes are
// accepted; anything else yields an empty collection.
func (f *Fetcher) decode(body []byte) []Raw {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		return env.Data
	}

	var encoded string
	if err := json.Unmarshal(body, &encoded); err != nil {
		f.logger.Error("listing response is neither an envelope nor a string",
			zap.Int("bytes", len(body)),
		)
		return nil
	}
	if err := json.Unmarshal([]byte(encoded), &env); err != nil {
		f.logger.Error("string-encoded listing response failed to parse",
			zap.Error(err),
		)
		return nil
	}
	f.logger.Debug("listing response arrived string-encoded")
	return env.Data
}
