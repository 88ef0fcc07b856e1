package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pfrederiksen/pool-standings/internal/scoring"
	"golang.org/x/time/rate"
)

const (
	UserAgent = "pool-standings/1.0 (github.com/pfrederiksen/pool-standings)"
	Timeout   = 30 * time.Second
	// MinInterval is the default minimum spacing between requests to the feed
	MinInterval = 10 * time.Second
)

// HTTPSource fetches the feed from a URL
type HTTPSource struct {
	client  *http.Client
	url     string
	format  Format
	limiter *rate.Limiter
}

// Option configures an HTTPSource
type Option func(*HTTPSource)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithMinInterval sets the minimum time between two requests. Zero disables spacing.
func WithMinInterval(d time.Duration) Option {
	return func(s *HTTPSource) {
		if d <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		s.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithHTTPClient replaces the underlying client
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// NewHTTPSource creates a source for url in the given format
func NewHTTPSource(url string, format Format, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:     url,
		format:  format,
		limiter: rate.NewLimiter(rate.Every(MinInterval), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the feed address
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch downloads and decodes one feed snapshot
func (s *HTTPSource) Fetch(ctx context.Context) ([]scoring.Row, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	rows, err := Decode(resp.Body, s.format)
	if err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}
	return rows, nil
}
