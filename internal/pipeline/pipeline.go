// Package pipeline orchestrates the ordered cascade of logo sources.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/logofetch/logofetch/internal/fetcher"
	"github.com/logofetch/logofetch/internal/imagecheck"
	"github.com/logofetch/logofetch/internal/logo"
	"github.com/logofetch/logofetch/internal/metrics"
	"github.com/logofetch/logofetch/internal/source"
)

// Pipeline tries sources strictly in priority order, sequentially,
// stopping at the first validated success. Source priority encodes
// quality, so sources are never raced concurrently.
type Pipeline struct {
	sources []logo.Source
	logger  *zap.Logger
}

// SourceURLs overrides provider endpoints, primarily for tests.
type SourceURLs struct {
	Clearbit      string
	GoogleFavicon string
	DDG           string
	DirectOrigin  string
}

// New builds the standard four-source pipeline over a shared fetch
// client.
func New(client *fetcher.Client, urls SourceURLs, logger *zap.Logger) *Pipeline {
	return FromSources(logger,
		source.NewClearbit(client, urls.Clearbit),
		source.NewGoogleFavicon(client, urls.GoogleFavicon),
		source.NewDDGSearch(client, urls.DDG),
		source.NewDirectFavicon(client, urls.DirectOrigin),
	)
}

// FromSources builds a pipeline over an explicit source list, in the
// order given.
func FromSources(logger *zap.Logger, sources ...logo.Source) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{sources: sources, logger: logger}
}

// FetchLogo runs the cascade. It never returns a Go error: every
// failure is captured in the result's attempt log, and exhaustion is
// reported as a structured non-success result.
func (p *Pipeline) FetchLogo(ctx context.Context, domain, company string, size logo.Size) logo.FetchResult {
	req := logo.SourceRequest{Domain: domain, Company: company, Size: size}
	result := logo.FetchResult{Attempts: make([]logo.FetchAttempt, 0, len(p.sources))}

	for _, src := range p.sources {
		start := time.Now()

		if err := ctx.Err(); err != nil {
			// A canceled attempt is still recorded so the diagnostic log
			// stays complete.
			result.Attempts = append(result.Attempts, failedAttempt(src.Name(), "", start,
				fmt.Sprintf("canceled: %v", err)))
			metrics.ObserveFetchAttempt(src.Name(), false, time.Since(start))
			break
		}

		resp, err := src.Fetch(ctx, req)
		if err != nil {
			result.Attempts = append(result.Attempts, failedAttempt(src.Name(), resp.URL, start, err.Error()))
			metrics.ObserveFetchAttempt(src.Name(), false, time.Since(start))
			p.logger.Debug("source failed",
				zap.String("source", src.Name()),
				zap.String("domain", domain),
				zap.Error(err),
			)
			continue
		}

		check := imagecheck.Validate(resp.Body)
		if !check.Valid {
			result.Attempts = append(result.Attempts, failedAttempt(src.Name(), resp.URL, start,
				"invalid content: "+check.Reason))
			metrics.ObserveFetchAttempt(src.Name(), false, time.Since(start))
			p.logger.Debug("source returned invalid content",
				zap.String("source", src.Name()),
				zap.String("domain", domain),
				zap.String("reason", check.Reason),
			)
			continue
		}

		elapsed := time.Since(start)
		result.Attempts = append(result.Attempts, logo.FetchAttempt{
			Source:     src.Name(),
			URL:        resp.URL,
			Success:    true,
			DurationMs: elapsed.Milliseconds(),
		})
		metrics.ObserveFetchAttempt(src.Name(), true, elapsed)

		result.Success = true
		result.Logo = &logo.Logo{
			Data:      resp.Body,
			Info:      check.Info,
			Source:    src.Name(),
			SourceURL: resp.URL,
		}
		p.logger.Info("logo fetched",
			zap.String("source", src.Name()),
			zap.String("domain", domain),
			zap.String("format", check.Info.Format),
			zap.Int("bytes", check.Info.SizeBytes),
		)
		return result
	}

	result.Error = fmt.Sprintf("all %d sources failed for %s", len(p.sources), domain)
	p.logger.Warn("logo fetch exhausted all sources",
		zap.String("domain", domain),
		zap.String("company", company),
		zap.Int("attempts", len(result.Attempts)),
	)
	return result
}

func failedAttempt(name, url string, start time.Time, message string) logo.FetchAttempt {
	return logo.FetchAttempt{
		Source:     name,
		URL:        url,
		Error:      message,
		DurationMs: time.Since(start).Milliseconds(),
	}
}
