// Package resolver maps free-text company names to canonical domains
// using a curated database, fuzzy matching, and a live-search fallback.
package resolver

import (
	"context"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/logofetch/logofetch/internal/logo"
	"github.com/logofetch/logofetch/internal/metrics"
)

// maxFuzzyDistance is the largest edit distance accepted by the fuzzy
// tier. Anything further is handed to live search instead.
const maxFuzzyDistance = 2

// SearchProvider is the live-search fallback used when the curated
// database has no plausible match. Implementations never return an
// error: any failure is reported as ("", false).
type SearchProvider interface {
	LookupDomain(ctx context.Context, name string) (string, bool)
}

// Resolver resolves free text against the curated database. Safe for
// concurrent use: the database is read-only and no per-call state is
// retained.
type Resolver struct {
	db     *Database
	search SearchProvider
	logger *zap.Logger
}

// New constructs a Resolver. search may be nil, which disables the
// live-search tier.
func New(db *Database, search SearchProvider, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{db: db, search: search, logger: logger}
}

// Resolve maps input to a domain. It never fails: confidence degrades
// through exact, alias, fuzzy, and live-search down to an inferred
// "<input>.com" guess. Tiers are tried strictly in order.
func (r *Resolver) Resolve(ctx context.Context, input string) logo.ResolvedDomain {
	normalized := Normalize(input)

	// An empty needle is within fuzzy distance of every short alias, so
	// blank input skips the matching tiers entirely.
	if normalized == "" {
		return r.inferred(input)
	}

	if entry, ok := r.db.Lookup(normalized); ok {
		return r.resolved(logo.ResolvedDomain{
			Domain:      entry.Domain,
			Company:     entry.Key,
			Category:    entry.Category,
			Confidence:  logo.ConfidenceExact,
			MatchedName: entry.Key,
		})
	}

	if entry, alias, ok := r.matchAlias(normalized); ok {
		return r.resolved(logo.ResolvedDomain{
			Domain:      entry.Domain,
			Company:     entry.Key,
			Category:    entry.Category,
			Confidence:  logo.ConfidenceAlias,
			MatchedName: alias,
		})
	}

	if entry, matched, ok := r.matchFuzzy(normalized); ok {
		return r.resolved(logo.ResolvedDomain{
			Domain:      entry.Domain,
			Company:     entry.Key,
			Category:    entry.Category,
			Confidence:  logo.ConfidenceFuzzy,
			MatchedName: matched,
		})
	}

	if r.search != nil {
		if domain, ok := r.search.LookupDomain(ctx, input); ok {
			return r.resolved(logo.ResolvedDomain{
				Domain:      domain,
				Company:     normalized,
				Confidence:  logo.ConfidenceLiveSearch,
				MatchedName: domain,
			})
		}
	}

	return r.inferred(input)
}

func (r *Resolver) inferred(input string) logo.ResolvedDomain {
	sanitized := sanitizeForDomain(input)
	return r.resolved(logo.ResolvedDomain{
		Domain:      sanitized + ".com",
		Company:     sanitized,
		Confidence:  logo.ConfidenceInferred,
		MatchedName: sanitized,
	})
}

func (r *Resolver) resolved(res logo.ResolvedDomain) logo.ResolvedDomain {
	metrics.ObserveResolve(string(res.Confidence))
	r.logger.Debug("resolved company name",
		zap.String("company", res.Company),
		zap.String("domain", res.Domain),
		zap.String("confidence", string(res.Confidence)),
	)
	return res
}

// matchAlias scans entries in iteration order; the first entry owning a
// matching alias wins.
func (r *Resolver) matchAlias(normalized string) (logo.CompanyEntry, string, bool) {
	for _, entry := range r.db.All() {
		for _, alias := range entry.Aliases {
			if Normalize(alias) == normalized {
				return entry, alias, true
			}
		}
	}
	return logo.CompanyEntry{}, "", false
}

// matchFuzzy finds the single key or alias with the smallest edit
// distance within maxFuzzyDistance. Ties keep the first candidate
// encountered, which is why database iteration order is fixed.
func (r *Resolver) matchFuzzy(normalized string) (logo.CompanyEntry, string, bool) {
	var (
		best     logo.CompanyEntry
		bestName string
		found    bool
	)
	bestDist := maxFuzzyDistance + 1
	consider := func(entry logo.CompanyEntry, candidate string) {
		d := levenshtein.ComputeDistance(normalized, Normalize(candidate))
		if d < bestDist {
			best, bestName, bestDist, found = entry, candidate, d, true
		}
	}
	for _, entry := range r.db.All() {
		consider(entry, entry.Key)
		for _, alias := range entry.Aliases {
			consider(entry, alias)
		}
	}
	if !found {
		return logo.CompanyEntry{}, "", false
	}
	return best, bestName, true
}
