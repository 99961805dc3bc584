package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logofetch/logofetch/internal/fetcher"
)

const serpPage = `<!DOCTYPE html>
<html><body>
<div class="result">
  <a class="result__a" href="https://en.wikipedia.org/wiki/Acme">Acme - Wikipedia</a>
  <a class="result__url" href="https://en.wikipedia.org/wiki/Acme">https://en.wikipedia.org/wiki/Acme</a>
</div>
<div class="result">
  <a class="result__a" href="https://www.linkedin.com/company/acme">Acme | LinkedIn</a>
  <a class="result__url" href="https://www.linkedin.com/company/acme">www.linkedin.com/company/acme</a>
</div>
<div class="result">
  <a class="result__a" href="https://www.acme-widgets.example/">Acme Widgets</a>
  <a class="result__url" href="https://www.acme-widgets.example/">https://www.acme-widgets.example/about</a>
</div>
</body></html>`

func newLiveSearch(t *testing.T, handler http.HandlerFunc) *LiveSearch {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := fetcher.New(fetcher.Config{Timeout: 2 * time.Second})
	return NewLiveSearch(client, srv.URL, nil)
}

func TestLiveSearch_SkipsExcludedHostsInDocumentOrder(t *testing.T) {
	t.Parallel()

	var gotQuery, gotCookie string
	ls := newLiveSearch(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(serpPage))
	})

	domain, ok := ls.LookupDomain(context.Background(), "acme")
	require.True(t, ok)
	require.Equal(t, "acme-widgets.example", domain)
	require.Equal(t, "acme official website", gotQuery)
	require.Contains(t, gotCookie, "k1=-1")
}

func TestLiveSearch_NoQualifyingResult(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<a class="result__url">https://en.wikipedia.org/wiki/X</a>
<a class="result__url">www.facebook.com/x</a>
</body></html>`
	ls := newLiveSearch(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	})

	_, ok := ls.LookupDomain(context.Background(), "x corp")
	require.False(t, ok)
}

func TestLiveSearch_ServerErrorIsNoMatch(t *testing.T) {
	t.Parallel()

	ls := newLiveSearch(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, ok := ls.LookupDomain(context.Background(), "acme")
	require.False(t, ok)
}

func TestLiveSearch_UnreachableEndpointIsNoMatch(t *testing.T) {
	t.Parallel()

	client := fetcher.New(fetcher.Config{Timeout: time.Second})
	ls := NewLiveSearch(client, "http://127.0.0.1:1", nil)

	_, ok := ls.LookupDomain(context.Background(), "acme")
	require.False(t, ok)
}

func TestLiveSearch_EmptyPageIsNoMatch(t *testing.T) {
	t.Parallel()

	ls := newLiveSearch(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>no results</body></html>"))
	})

	_, ok := ls.LookupDomain(context.Background(), "acme")
	require.False(t, ok)
}

func TestDisplayedHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"https://www.shopify.com/about", "shopify.com"},
		{"www.example.com", "example.com"},
		{"http://sub.example.org/path?x=1", "sub.example.org"},
		{"  EXAMPLE.com/  ", "example.com"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, displayedHost(tc.in), "input %q", tc.in)
	}
}

func TestIsExcludedHost(t *testing.T) {
	t.Parallel()

	require.True(t, isExcludedHost("wikipedia.org"))
	require.True(t, isExcludedHost("en.wikipedia.org"))
	require.True(t, isExcludedHost("play.google.com"))
	require.False(t, isExcludedHost("shopify.com"))
	require.False(t, isExcludedHost("notwikipedia.org.example"))
}
