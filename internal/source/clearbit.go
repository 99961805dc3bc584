// Package source implements the ordered fetch strategies the pipeline
// cascades through. Each strategy keys off the resolved domain or the
// company name and maps the logical size to its provider's parameter.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/logofetch/logofetch/internal/fetcher"
	"github.com/logofetch/logofetch/internal/logo"
)

const (
	defaultClearbitBase = "https://logo.clearbit.com"
	clearbitTimeout     = 10 * time.Second

	// Clearbit caps the size parameter; requesting past it returns the
	// capped rendition anyway.
	clearbitMaxPixels = 512
)

// Clearbit fetches from the Clearbit logo CDN, keyed by domain. It is
// the highest-quality source and runs first.
type Clearbit struct {
	client  *fetcher.Client
	baseURL string
}

// NewClearbit builds the source. baseURL overrides the CDN endpoint for
// tests; pass "" for the default.
func NewClearbit(client *fetcher.Client, baseURL string) *Clearbit {
	if baseURL == "" {
		baseURL = defaultClearbitBase
	}
	return &Clearbit{client: client, baseURL: baseURL}
}

// Name identifies this source in attempt logs.
func (s *Clearbit) Name() string { return "clearbit" }

// Fetch requests roughly twice the logical pixel size so downstream
// consumers can downscale without artifacts.
func (s *Clearbit) Fetch(ctx context.Context, req logo.SourceRequest) (logo.SourceResponse, error) {
	px := req.Size.Pixels() * 2
	if px > clearbitMaxPixels {
		px = clearbitMaxPixels
	}
	u := fmt.Sprintf("%s/%s?size=%d&format=png", s.baseURL, req.Domain, px)

	resp, err := s.client.Get(ctx, fetcher.Request{URL: u, Timeout: clearbitTimeout})
	if err != nil {
		return logo.SourceResponse{URL: u}, err
	}
	return logo.SourceResponse{Body: resp.Body, URL: u}, nil
}
