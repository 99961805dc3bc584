package resolver

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/logofetch/logofetch/internal/fetcher"
)

const (
	defaultLiveSearchBase = "https://html.duckduckgo.com/html/"
	liveSearchTimeout     = 5 * time.Second

	// DuckDuckGo settings cookie: k1=-1 disables ad entries in results.
	liveSearchCookie = "k1=-1"
)

// Hosts that rank well for almost any company query but never are the
// company's own site. Matches are by exact host or subdomain suffix.
var excludedSearchHosts = []string{
	"wikipedia.org",
	"wikimedia.org",
	"britannica.com",
	"linkedin.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"youtube.com",
	"reddit.com",
	"crunchbase.com",
	"bloomberg.com",
	"finance.yahoo.com",
	"apps.apple.com",
	"play.google.com",
	"trustpilot.com",
	"glassdoor.com",
	"yelp.com",
	"duckduckgo.com",
}

// LiveSearch resolves a company name to a domain by scraping one search
// results page. Parsing third-party HTML is inherently brittle, so every
// failure mode (network, timeout, parse miss) degrades to "no match".
type LiveSearch struct {
	client  *fetcher.Client
	baseURL string
	logger  *zap.Logger
}

// NewLiveSearch builds a LiveSearch against the default endpoint.
// baseURL overrides the endpoint for tests; pass "" for the default.
func NewLiveSearch(client *fetcher.Client, baseURL string, logger *zap.Logger) *LiveSearch {
	if baseURL == "" {
		baseURL = defaultLiveSearchBase
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LiveSearch{client: client, baseURL: baseURL, logger: logger}
}

// LookupDomain issues one bounded query for `<name> official website`
// and returns the first result whose displayed host is not on the
// exclusion list. It never returns an error.
func (s *LiveSearch) LookupDomain(ctx context.Context, name string) (string, bool) {
	query := url.Values{"q": {name + " official website"}}
	headers := http.Header{}
	headers.Set("Cookie", liveSearchCookie)

	resp, err := s.client.Get(ctx, fetcher.Request{
		URL:     s.baseURL + "?" + query.Encode(),
		Timeout: liveSearchTimeout,
		Headers: headers,
	})
	if err != nil {
		s.logger.Debug("live search fetch failed", zap.String("name", name), zap.Error(err))
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		s.logger.Debug("live search parse failed", zap.String("name", name), zap.Error(err))
		return "", false
	}

	var found string
	doc.Find(".result__url").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		host := displayedHost(sel.Text())
		if host == "" || isExcludedHost(host) {
			return true
		}
		found = host
		return false
	})
	if found == "" {
		s.logger.Debug("live search had no qualifying result", zap.String("name", name))
		return "", false
	}
	return found, true
}

// displayedHost reduces a displayed result URL ("https://www.x.com/about")
// to its bare host ("x.com").
func displayedHost(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "https://")
	text = strings.TrimPrefix(text, "http://")
	text = strings.TrimPrefix(text, "www.")
	if i := strings.IndexAny(text, "/?#"); i >= 0 {
		text = text[:i]
	}
	return strings.ToLower(strings.TrimSpace(text))
}

func isExcludedHost(host string) bool {
	for _, excluded := range excludedSearchHosts {
		if host == excluded || strings.HasSuffix(host, "."+excluded) {
			return true
		}
	}
	return false
}
