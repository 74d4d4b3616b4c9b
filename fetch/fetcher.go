// Package fetch downloads vendor metadata payloads with retry, DNS caching
// and per-host circuit breaking.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/dnscache"

	"github.com/git-pkgs/jdks/internal/core"
)

var (
	ErrNotFound     = errors.New("payload not found")
	ErrRateLimited  = errors.New("rate limited by upstream")
	ErrUpstreamDown = errors.New("upstream unavailable")
	ErrTooLarge     = errors.New("payload exceeds size limit")
)

const (
	DefaultUserAgent   = "git-pkgs-jdks/1.0"
	DefaultMaxBodySize = 64 << 20
	gitHubAPIHost      = "api.github.com"
)

// Response is an open upstream response body with its metadata.
type Response struct {
	Body        io.ReadCloser
	Size        int64 // -1 if unknown
	ContentType string
	ETag        string
}

// Interface is satisfied by Fetcher and CircuitBreakerFetcher.
type Interface interface {
	Fetch(ctx context.Context, url string) (*Response, error)
	Head(ctx context.Context, url string) (size int64, contentType string, err error)
	Payload(ctx context.Context, url string) (core.Payload, error)
}

// Fetcher downloads payloads from distribution endpoints.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxRetries  int
	baseDelay   time.Duration
	maxBodySize int64
	authFn      func(url string) (headerName, headerValue string)
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxRetries sets the maximum retry attempts.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) {
		f.maxRetries = n
	}
}

// WithBaseDelay sets the base delay for exponential backoff.
func WithBaseDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.baseDelay = d
	}
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithMaxBodySize caps how many bytes Payload will buffer.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithAuthFunc sets a function that returns auth headers for a given URL.
// Return empty strings to skip authentication for that URL.
func WithAuthFunc(fn func(url string) (headerName, headerValue string)) Option {
	return func(f *Fetcher) {
		f.authFn = fn
	}
}

// WithGitHubToken authenticates requests to the GitHub API. Anonymous
// clients get 60 requests an hour, which a full discovery run exceeds.
func WithGitHubToken(token string) Option {
	if token == "" {
		return func(*Fetcher) {}
	}
	return WithAuthFunc(func(rawURL string) (string, string) {
		if hostOf(rawURL) != gitHubAPIHost {
			return "", ""
		}
		return "Authorization", "Bearer " + token
	})
}

// NewFetcher creates a new Fetcher with the given options.
func NewFetcher(opts ...Option) *Fetcher {
	resolver := &dnscache.Resolver{}
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			resolver.Refresh(true)
		}
	}()

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	f := &Fetcher{
		client: &http.Client{
			Timeout: time.Minute,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					host, port, err := net.SplitHostPort(addr)
					if err != nil {
						return nil, err
					}
					ips, err := resolver.LookupHost(ctx, host)
					if err != nil {
						return nil, err
					}
					for _, ip := range ips {
						conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
						if err == nil {
							return conn, nil
						}
					}
					return nil, fmt.Errorf("failed to dial any resolved IP for %s", host)
				},
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		userAgent:   DefaultUserAgent,
		maxRetries:  3,
		baseDelay:   500 * time.Millisecond,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch opens the given URL. The caller must close Response.Body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			// 10% jitter keeps parallel discoveries from retrying in lockstep
			delay := f.baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(float64(delay) * (rand.Float64() * 0.1))
			delay += jitter

			slog.Warn("retrying fetch", "url", url, "attempt", attempt, "delay", delay, "error", lastErr)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := f.doFetch(ctx, url)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if errors.Is(err, ErrNotFound) {
			return nil, err
		}

		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUpstreamDown) {
			continue
		}

		return nil, err
	}

	return nil, lastErr
}

// Payload fetches url and buffers the body for an adapter to parse.
func (f *Fetcher) Payload(ctx context.Context, url string) (core.Payload, error) {
	return readPayload(f.Fetch(ctx, url))(url, f.maxBodySize)
}

func (f *Fetcher) doFetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	f.decorate(req, url)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return &Response{
			Body:        resp.Body,
			Size:        contentLength(resp.Header),
			ContentType: resp.Header.Get("Content-Type"),
			ETag:        resp.Header.Get("ETag"),
		}, nil

	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, ErrRateLimited)

	case resp.StatusCode >= 500:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, ErrUpstreamDown)

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, string(body))
	}
}

// Head checks that a locator answers without downloading the payload.
func (f *Fetcher) Head(ctx context.Context, url string) (size int64, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	f.decorate(req, url)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("head request: %w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, "", fmt.Errorf("%s: %w", url, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return contentLength(resp.Header), resp.Header.Get("Content-Type"), nil
}

func (f *Fetcher) decorate(req *http.Request, rawURL string) {
	req.Header.Set("User-Agent", f.userAgent)
	if req.URL.Host == gitHubAPIHost {
		req.Header.Set("Accept", "application/vnd.github+json")
	} else {
		req.Header.Set("Accept", "*/*")
	}
	if f.authFn != nil {
		if name, value := f.authFn(rawURL); name != "" && value != "" {
			req.Header.Set(name, value)
		}
	}
}

// readPayload is curried so both fetchers can pass their Fetch results
// straight through.
func readPayload(resp *Response, err error) func(url string, limit int64) (core.Payload, error) {
	return func(url string, limit int64) (core.Payload, error) {
		if err != nil {
			return core.Payload{}, err
		}
		defer func() { _ = resp.Body.Close() }()

		if limit <= 0 {
			limit = DefaultMaxBodySize
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
		if err != nil {
			return core.Payload{}, fmt.Errorf("reading %s: %w", url, err)
		}
		if int64(len(body)) > limit {
			return core.Payload{}, fmt.Errorf("%s: %w", url, ErrTooLarge)
		}
		return core.NewPayload(body, url), nil
	}
}

func contentLength(h http.Header) int64 {
	if cl := h.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil {
			return n
		}
	}
	return -1
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
