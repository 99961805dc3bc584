// Package bulk fans out independent resolve+fetch chains under a fixed
// concurrency cap.
package bulk

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/logofetch/logofetch/internal/logo"
	"github.com/logofetch/logofetch/internal/metrics"
)

// DefaultConcurrency is the fan-out cap when none is configured.
const DefaultConcurrency = 5

// Resolver maps one free-text name to a domain.
type Resolver interface {
	Resolve(ctx context.Context, input string) logo.ResolvedDomain
}

// LogoFetcher runs the source cascade for one resolved domain.
type LogoFetcher interface {
	FetchLogo(ctx context.Context, domain, company string, size logo.Size) logo.FetchResult
}

// ItemResult is the outcome for one input name. SaveError and
// RecordError carry persistence failures separately from fetch
// failures so one does not mask the other.
type ItemResult struct {
	Input       string              `json:"input"`
	Resolved    logo.ResolvedDomain `json:"resolved"`
	Fetch       logo.FetchResult    `json:"fetch"`
	SavedPath   string              `json:"saved_path,omitempty"`
	SaveError   string              `json:"save_error,omitempty"`
	RecordError string              `json:"record_error,omitempty"`
}

// Coordinator runs resolve+fetch chains. Sink and store are optional;
// nil disables the corresponding step.
type Coordinator struct {
	resolver    Resolver
	fetcher     LogoFetcher
	sink        logo.Sink
	store       logo.Store
	clock       logo.Clock
	concurrency int
	logger      *zap.Logger
}

// New constructs a Coordinator.
func New(resolver Resolver, fetcher LogoFetcher, sink logo.Sink, store logo.Store, concurrency int, logger *zap.Logger) *Coordinator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		resolver:    resolver,
		fetcher:     fetcher,
		sink:        sink,
		store:       store,
		clock:       logo.SystemClock{},
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run processes names with at most the configured number of chains in
// flight. Results come back in input order. One item's failure never
// cancels or affects siblings, and no overall deadline is imposed
// beyond the per-operation timeouts inside resolve and fetch.
func (c *Coordinator) Run(ctx context.Context, names []string, size logo.Size) []ItemResult {
	results := make([]ItemResult, len(names))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, name := range names {
		g.Go(func() error {
			results[i] = c.processItem(ctx, name, size)
			return nil
		})
	}
	// Items never return errors; Wait only synchronizes completion.
	_ = g.Wait()
	return results
}

func (c *Coordinator) processItem(ctx context.Context, name string, size logo.Size) ItemResult {
	item := ItemResult{Input: name}
	item.Resolved = c.resolver.Resolve(ctx, name)
	item.Fetch = c.fetcher.FetchLogo(ctx, item.Resolved.Domain, item.Resolved.Company, size)
	metrics.ObserveBulkItem(item.Fetch.Success)

	if item.Fetch.Success && c.sink != nil {
		path, err := c.sink.Save(ctx, item.Resolved.Company, item.Fetch.Logo.Info, item.Fetch.Logo.Data)
		if err != nil {
			item.SaveError = err.Error()
			c.logger.Warn("sink save failed",
				zap.String("company", item.Resolved.Company),
				zap.Error(err),
			)
		} else {
			item.SavedPath = path
		}
	}

	if c.store != nil {
		if err := c.store.RecordFetch(ctx, c.buildRecord(item)); err != nil {
			item.RecordError = err.Error()
			c.logger.Warn("store record failed",
				zap.String("company", item.Resolved.Company),
				zap.Error(err),
			)
		}
	}
	return item
}

func (c *Coordinator) buildRecord(item ItemResult) logo.FetchRecord {
	rec := logo.FetchRecord{
		ID:         uuid.NewString(),
		Company:    item.Resolved.Company,
		Domain:     item.Resolved.Domain,
		Confidence: item.Resolved.Confidence,
		Success:    item.Fetch.Success,
		Error:      item.Fetch.Error,
		FetchedAt:  c.clock.Now(),
	}
	if item.Fetch.Logo != nil {
		rec.Source = item.Fetch.Logo.Source
		rec.SourceURL = item.Fetch.Logo.SourceURL
		rec.Format = item.Fetch.Logo.Info.Format
		rec.SizeBytes = item.Fetch.Logo.Info.SizeBytes
	}
	return rec
}
