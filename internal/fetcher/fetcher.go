// Package fetcher performs single bounded HTTP retrievals using the
// Colly collector. Every fetch source and the live-search tier go
// through this client so timeout and header handling stay uniform.
package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// DefaultUserAgent identifies this client to upstream providers.
const DefaultUserAgent = "logofetch/1.0 (+https://github.com/logofetch/logofetch)"

const defaultTimeout = 10 * time.Second

// Config controls client behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Client executes one-shot GETs with a pooled transport. Safe for
// concurrent use; each request runs on a clone of the base collector.
type Client struct {
	cfg           Config
	transport     http.RoundTripper
	baseCollector *colly.Collector
}

// Request captures everything needed to retrieve one URL.
type Request struct {
	URL string
	// Timeout overrides the client default when set.
	Timeout time.Duration
	Headers http.Header
}

// Response is the body plus metadata of a completed retrieval.
type Response struct {
	URL        string
	StatusCode int
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

// New builds a Client.
func New(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	c := colly.NewCollector(colly.Async(false))
	// Fixed provider endpoints, not crawling: robots handling stays off.
	c.IgnoreRobotsTxt = true
	transport := newHTTPTransport()
	c.WithTransport(transport)

	return &Client{
		cfg:           cfg,
		transport:     transport,
		baseCollector: c,
	}
}

// Get retrieves a single URL. The request is bounded by the configured
// timeout and aborts the underlying connection on context cancellation.
func (c *Client) Get(ctx context.Context, request Request) (Response, error) {
	var (
		result   Response
		fetchErr error
	)
	start := time.Now()

	collector := c.baseCollector.Clone()
	collector.UserAgent = c.cfg.UserAgent
	collector.WithTransport(c.transport)
	timeout := request.Timeout
	if timeout == 0 {
		timeout = c.cfg.Timeout
	}
	collector.SetRequestTimeout(timeout)

	collector.OnRequest(func(r *colly.Request) {
		for key, values := range request.Headers {
			for _, v := range values {
				r.Headers.Add(key, v)
			}
		}
	})
	collector.OnResponse(func(r *colly.Response) {
		result = Response{
			URL:        r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Headers:    r.Headers.Clone(),
			Body:       append([]byte(nil), r.Body...),
			Duration:   time.Since(start),
		}
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = fmt.Errorf("unexpected status %d: %w", r.StatusCode, err)
			return
		}
		fetchErr = err
	})

	if err := c.runCollector(ctx, collector, request.URL, &fetchErr); err != nil {
		return Response{URL: request.URL, Duration: time.Since(start)}, err
	}
	return result, nil
}

func (c *Client) runCollector(ctx context.Context, collector *colly.Collector, url string, fetchErr *error) error {
	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		// OnError fires before Visit returns and carries the HTTP status
		// when there is one, so it takes precedence over Visit's error.
		if *fetchErr != nil {
			return fmt.Errorf("fetch %s: %w", url, *fetchErr)
		}
		if err != nil {
			return fmt.Errorf("visit %s: %w", url, err)
		}
		return nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
