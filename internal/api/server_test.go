package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logofetch/logofetch/internal/bulk"
	"github.com/logofetch/logofetch/internal/logo"
	"github.com/logofetch/logofetch/internal/resolver"
)

type fakeResolver struct {
	searchResults []resolver.RankedEntry
	gotQuery      string
	gotOpts       resolver.SearchOptions
}

func (f *fakeResolver) Resolve(_ context.Context, input string) logo.ResolvedDomain {
	key := strings.ToLower(strings.TrimSpace(input))
	return logo.ResolvedDomain{
		Domain:      key + ".com",
		Company:     key,
		Confidence:  logo.ConfidenceExact,
		MatchedName: key,
	}
}

func (f *fakeResolver) Search(query string, opts resolver.SearchOptions) []resolver.RankedEntry {
	f.gotQuery = query
	f.gotOpts = opts
	return f.searchResults
}

type fakeFetcher struct {
	fail    bool
	gotSize logo.Size
}

func (f *fakeFetcher) FetchLogo(_ context.Context, domain, _ string, size logo.Size) logo.FetchResult {
	f.gotSize = size
	if f.fail {
		return logo.FetchResult{
			Attempts: []logo.FetchAttempt{
				{Source: "clearbit", URL: "https://logo.clearbit.com/" + domain, Error: "unexpected status 404"},
				{Source: "google-favicon", Error: "placeholder icon"},
			},
			Error: "all 4 sources failed for " + domain,
		}
	}
	return logo.FetchResult{
		Success: true,
		Logo: &logo.Logo{
			Data:      []byte("fake png bytes"),
			Info:      logo.ImageInfo{Format: "PNG", Extension: "png", MIMEType: "image/png", SizeBytes: 14, IsValid: true},
			Source:    "clearbit",
			SourceURL: "https://logo.clearbit.com/" + domain,
		},
		Attempts: []logo.FetchAttempt{{Source: "clearbit", Success: true}},
	}
}

type fakeBulk struct {
	gotNames []string
	gotSize  logo.Size
}

func (f *fakeBulk) Run(_ context.Context, names []string, size logo.Size) []bulk.ItemResult {
	f.gotNames = names
	f.gotSize = size
	results := make([]bulk.ItemResult, len(names))
	for i, name := range names {
		results[i] = bulk.ItemResult{
			Input: name,
			Fetch: logo.FetchResult{Success: i%2 == 0},
		}
	}
	return results
}

func newTestServer(res *fakeResolver, fetcher *fakeFetcher, bulkRunner *fakeBulk) *httptest.Server {
	s := NewServer(res, fetcher, bulkRunner, nil)
	return httptest.NewServer(s.Handler())
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		resp.Body.Close()
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "go_goroutines")
}

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/resolve?name=GitHub")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var resolved logo.ResolvedDomain
	decodeBody(t, resp, &resolved)
	require.Equal(t, "github.com", resolved.Domain)
	require.Equal(t, logo.ConfidenceExact, resolved.Confidence)
}

func TestResolveEndpointRequiresName(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/resolve")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	t.Parallel()

	res := &fakeResolver{searchResults: []resolver.RankedEntry{
		{CompanyEntry: logo.CompanyEntry{Key: "github", Domain: "github.com", Category: "technology"}, Score: 0},
	}}
	srv := newTestServer(res, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/search?q=github&category=technology&limit=5")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results []resolver.RankedEntry `json:"results"`
		Count   int                    `json:"count"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, 1, body.Count)
	require.Equal(t, "github", body.Results[0].Key)

	require.Equal(t, "github", res.gotQuery)
	require.Equal(t, "technology", res.gotOpts.Category)
	require.Equal(t, 5, res.gotOpts.Limit)
}

func TestSearchEndpointValidation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/search")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/v1/search?q=github&limit=nope")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/v1/search?q=github&limit=-1")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLogoSuccess(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	srv := newTestServer(&fakeResolver{}, fetcher, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/logos/github?size=large")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	require.Equal(t, "clearbit", resp.Header.Get("X-Logo-Source"))
	require.Equal(t, "exact", resp.Header.Get("X-Logo-Confidence"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, []byte("fake png bytes"), body)
	require.Equal(t, logo.SizeLarge, fetcher.gotSize)
}

func TestGetLogoDefaultSizeIsMedium(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	srv := newTestServer(&fakeResolver{}, fetcher, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/logos/github")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, logo.SizeMedium, fetcher.gotSize)
}

func TestGetLogoInvalidSize(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/logos/github?size=huge")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLogoFailureReportsAttempts(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{fail: true}, &fakeBulk{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/logos/deadcorp")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body struct {
		Error    string              `json:"error"`
		Resolved logo.ResolvedDomain `json:"resolved"`
		Attempts []logo.FetchAttempt `json:"attempts"`
	}
	decodeBody(t, resp, &body)
	require.Contains(t, body.Error, "all 4 sources failed")
	require.Equal(t, "deadcorp.com", body.Resolved.Domain)
	require.Len(t, body.Attempts, 2)
	require.Equal(t, "clearbit", body.Attempts[0].Source)
}

func TestBulkEndpoint(t *testing.T) {
	t.Parallel()

	bulkRunner := &fakeBulk{}
	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, bulkRunner)
	defer srv.Close()

	payload := `{"names": ["github", "shopify", "stripe"], "size": "small"}`
	resp, err := http.Post(srv.URL+"/v1/logos/bulk", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results   []bulk.ItemResult `json:"results"`
		Total     int               `json:"total"`
		Succeeded int               `json:"succeeded"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, 3, body.Total)
	require.Equal(t, 2, body.Succeeded)
	require.Equal(t, []string{"github", "shopify", "stripe"}, bulkRunner.gotNames)
	require.Equal(t, logo.SizeSmall, bulkRunner.gotSize)
}

func TestBulkEndpointValidation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeResolver{}, &fakeFetcher{}, &fakeBulk{})
	defer srv.Close()

	cases := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{"names": [`},
		{"empty names", `{"names": []}`},
		{"bad size", `{"names": ["github"], "size": "giant"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/v1/logos/bulk", "application/json", strings.NewReader(tc.payload))
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want logo.Size
		ok   bool
	}{
		{"", logo.SizeMedium, true},
		{"small", logo.SizeSmall, true},
		{"medium", logo.SizeMedium, true},
		{"large", logo.SizeLarge, true},
		{"LARGE", "", false},
		{"128", "", false},
	}
	for _, tc := range cases {
		got, ok := parseSize(tc.raw)
		require.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if ok {
			require.Equal(t, tc.want, got)
		}
	}
}
