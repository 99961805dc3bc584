// Package logo defines core types shared across subsystems.
package logo

import "time"

// Confidence describes how a resolution result was derived, ordered
// roughly by decreasing trustworthiness.
type Confidence string

// Confidence tiers produced by the resolution engine.
const (
	ConfidenceExact      Confidence = "exact"
	ConfidenceAlias      Confidence = "alias"
	ConfidenceFuzzy      Confidence = "fuzzy"
	ConfidenceLiveSearch Confidence = "live-search"
	ConfidenceInferred   Confidence = "inferred"
)

// Size is the logical logo size requested by callers.
type Size string

// Logical sizes and their pixel mappings.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Pixels maps the logical size onto a pixel dimension. Unknown values
// fall back to medium.
func (s Size) Pixels() int {
	switch s {
	case SizeSmall:
		return 64
	case SizeLarge:
		return 256
	default:
		return 128
	}
}

// CompanyEntry is one row of the curated company database. The full set
// is loaded once at startup and never mutated.
type CompanyEntry struct {
	Key      string   `json:"key"`
	Domain   string   `json:"domain"`
	Aliases  []string `json:"aliases,omitempty"`
	Category string   `json:"category"`
}

// ResolvedDomain is the result of mapping free text to a domain.
type ResolvedDomain struct {
	Domain      string     `json:"domain"`
	Company     string     `json:"company"`
	Category    string     `json:"category,omitempty"`
	Confidence  Confidence `json:"confidence"`
	MatchedName string     `json:"matched_name"`
}

// ImageInfo describes a validated image buffer. Derived purely from
// buffer content.
type ImageInfo struct {
	Format    string `json:"format"`
	Extension string `json:"extension"`
	MIMEType  string `json:"mime_type"`
	SizeBytes int    `json:"size_bytes"`
	IsValid   bool   `json:"is_valid"`
	IsSVG     bool   `json:"is_svg"`
}

// FetchAttempt records one source tried during a fetch, in order.
type FetchAttempt struct {
	Source     string `json:"source"`
	URL        string `json:"url"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Logo is a validated image payload with provenance.
type Logo struct {
	Data      []byte    `json:"-"`
	Info      ImageInfo `json:"info"`
	Source    string    `json:"source"`
	SourceURL string    `json:"source_url"`
}

// FetchResult is the outcome of one fetch pipeline invocation. It is
// constructed fresh per call and owned by the caller afterwards.
type FetchResult struct {
	Success  bool           `json:"success"`
	Logo     *Logo          `json:"logo,omitempty"`
	Attempts []FetchAttempt `json:"attempts"`
	Error    string         `json:"error,omitempty"`
}

// SourceRequest carries the inputs a fetch source needs. Sources key off
// either Domain or Company depending on the strategy.
type SourceRequest struct {
	Domain  string
	Company string
	Size    Size
}

// SourceResponse is the payload returned by a fetch source. URL is
// populated even when the fetch fails so attempts can be logged.
type SourceResponse struct {
	Body []byte
	URL  string
}

// FetchRecord is the persisted metadata for one completed fetch.
type FetchRecord struct {
	ID         string     `json:"id"`
	Company    string     `json:"company"`
	Domain     string     `json:"domain"`
	Confidence Confidence `json:"confidence"`
	Source     string     `json:"source,omitempty"`
	SourceURL  string     `json:"source_url,omitempty"`
	Format     string     `json:"format,omitempty"`
	SizeBytes  int        `json:"size_bytes"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
	FetchedAt  time.Time  `json:"fetched_at"`
}
