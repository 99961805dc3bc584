package source

import (
	"context"
	"fmt"
	"time"

	"github.com/logofetch/logofetch/internal/fetcher"
	"github.com/logofetch/logofetch/internal/imagecheck"
	"github.com/logofetch/logofetch/internal/logo"
)

const directFaviconTimeout = 8 * time.Second

// Conventional icon paths, highest quality first. Touch icons are
// usually 180px; the root favicon.ico is the last resort.
var directIconPaths = []string{
	"/apple-touch-icon.png",
	"/apple-touch-icon-precomposed.png",
	"/favicon-32x32.png",
	"/favicon.ico",
}

// DirectFavicon probes conventional icon paths on the domain's own
// HTTPS origin. Unlike the other sources it validates content itself,
// because a probe that returns an HTML 404 page must fall through to
// the next path rather than surface as a hit.
type DirectFavicon struct {
	client  *fetcher.Client
	baseURL string
}

// NewDirectFavicon builds the source. baseURL overrides the origin for
// tests; pass "" to probe https://<domain> as usual.
func NewDirectFavicon(client *fetcher.Client, baseURL string) *DirectFavicon {
	return &DirectFavicon{client: client, baseURL: baseURL}
}

// Name identifies this source in attempt logs.
func (s *DirectFavicon) Name() string { return "direct-favicon" }

// Fetch tries each conventional path in order and returns the first
// payload that validates as an image. Exhausting the list propagates
// the last encountered error.
func (s *DirectFavicon) Fetch(ctx context.Context, req logo.SourceRequest) (logo.SourceResponse, error) {
	origin := s.baseURL
	if origin == "" {
		origin = "https://" + req.Domain
	}

	var (
		lastURL string
		lastErr error
	)
	for _, path := range directIconPaths {
		u := origin + path
		lastURL = u

		resp, err := s.client.Get(ctx, fetcher.Request{URL: u, Timeout: directFaviconTimeout})
		if err != nil {
			lastErr = err
			continue
		}
		if check := imagecheck.Validate(resp.Body); !check.Valid {
			lastErr = fmt.Errorf("probe %s: %s", path, check.Reason)
			continue
		}
		return logo.SourceResponse{Body: resp.Body, URL: u}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no icon found at conventional paths on %s", origin)
	}
	return logo.SourceResponse{URL: lastURL}, lastErr
}
