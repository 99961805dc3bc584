package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/logofetch/logofetch/internal/fetcher"
	"github.com/logofetch/logofetch/internal/logo"
)

const (
	defaultDDGBase   = "https://duckduckgo.com"
	ddgSearchTimeout = 10 * time.Second
)

// instantAnswer is the subset of the DuckDuckGo Instant Answer response
// this source consumes. Image is often a path relative to the service's
// own host.
type instantAnswer struct {
	Image string `json:"Image"`
}

// DDGSearch fetches a logo via the DuckDuckGo structured search API,
// keyed by company name rather than domain. It is the only source that
// performs two requests: one for the answer, one for the image it names.
type DDGSearch struct {
	client  *fetcher.Client
	baseURL string
}

// NewDDGSearch builds the source. baseURL overrides the endpoint for
// tests; pass "" for the default.
func NewDDGSearch(client *fetcher.Client, baseURL string) *DDGSearch {
	if baseURL == "" {
		baseURL = defaultDDGBase
	}
	return &DDGSearch{client: client, baseURL: baseURL}
}

// Name identifies this source in attempt logs.
func (s *DDGSearch) Name() string { return "ddg-search" }

// Fetch queries the structured API and retrieves the image it points at.
func (s *DDGSearch) Fetch(ctx context.Context, req logo.SourceRequest) (logo.SourceResponse, error) {
	query := url.Values{"q": {req.Company}, "format": {"json"}, "no_html": {"1"}}
	queryURL := s.baseURL + "/?" + query.Encode()

	resp, err := s.client.Get(ctx, fetcher.Request{URL: queryURL, Timeout: ddgSearchTimeout})
	if err != nil {
		return logo.SourceResponse{URL: queryURL}, err
	}

	var answer instantAnswer
	if err := json.Unmarshal(resp.Body, &answer); err != nil {
		return logo.SourceResponse{URL: queryURL}, fmt.Errorf("decode search response: %w", err)
	}
	if answer.Image == "" {
		return logo.SourceResponse{URL: queryURL}, fmt.Errorf("no image in search response for %q", req.Company)
	}

	imageURL, err := s.resolveImageURL(answer.Image)
	if err != nil {
		return logo.SourceResponse{URL: queryURL}, err
	}

	imageResp, err := s.client.Get(ctx, fetcher.Request{URL: imageURL, Timeout: ddgSearchTimeout})
	if err != nil {
		return logo.SourceResponse{URL: imageURL}, err
	}
	return logo.SourceResponse{Body: imageResp.Body, URL: imageURL}, nil
}

// resolveImageURL resolves a possibly relative image reference against
// the service's own host.
func (s *DDGSearch) resolveImageURL(image string) (string, error) {
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	ref, err := url.Parse(image)
	if err != nil {
		return "", fmt.Errorf("parse image url %q: %w", image, err)
	}
	return base.ResolveReference(ref).String(), nil
}
