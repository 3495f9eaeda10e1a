// Package formatter renders NCBI ancestor chains as rank-prefixed,
// pipe-delimited lineage strings.
package formatter

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Formatter resolves and formats taxonomic lineages against one taxonomy
// database instance. Lookups are strictly sequential and blocking; the only
// shared state is the injected memo cache.
type Formatter struct {
	tax    ports.Taxonomy
	cache  ports.LineageCache
	logger ports.Logger
}

// New creates a Formatter bound to the given taxonomy instance.
func New(tax ports.Taxonomy, cache ports.LineageCache, logger ports.Logger) *Formatter {
	return &Formatter{
		tax:    tax,
		cache:  cache,
		logger: logger,
	}
}

// Format returns the formatted lineage for one taxon id. Results, including
// failures, are memoized per database instance: a repeated id never
// re-queries the taxonomy. An empty lineage with a nil Err means no ancestor
// carried a recognized rank; a non-nil Err means the lookup failed.
func (f *Formatter) Format(ctx context.Context, id domain.TaxonID) domain.LineageResult {
	key := cacheKey(f.tax.Ref(), id)
	if res, ok := f.cache.Get(key); ok {
		return res
	}

	res := f.resolve(ctx, id)
	f.cache.Put(key, res)
	return res
}

// FormatBatch resolves every id independently and returns a map holding one
// entry per distinct input id. A failure on one id is recorded in the map
// and never interrupts the remaining ids. The memo cache is not consulted:
// callers already batch at the call site, and resolution is deterministic,
// so duplicate ids produce identical writes.
func (f *Formatter) FormatBatch(ctx context.Context, ids []domain.TaxonID) map[domain.TaxonID]domain.LineageResult {
	out := make(map[domain.TaxonID]domain.LineageResult, len(ids))
	for _, id := range ids {
		out[id] = f.resolve(ctx, id)
	}
	return out
}

// resolve performs the four-step lookup: ancestor chain, names, ranks, then
// token rendering in chain order.
func (f *Formatter) resolve(ctx context.Context, id domain.TaxonID) domain.LineageResult {
	chain, err := f.tax.Lineage(ctx, id)
	if err != nil {
		return f.failure(id, err)
	}

	names, err := f.tax.Names(ctx, chain)
	if err != nil {
		return f.failure(id, err)
	}

	ranks, err := f.tax.Ranks(ctx, chain)
	if err != nil {
		return f.failure(id, err)
	}

	tokens := make([]string, 0, len(domain.RankPrefixes))
	for _, tid := range chain {
		prefix, recognized := domain.RankPrefixes[ranks[tid]]
		if !recognized {
			continue
		}
		name, ok := names[tid]
		if !ok {
			return f.failure(id, zerr.With(domain.ErrNameMissing, "ancestor", int(tid)))
		}
		tokens = append(tokens, prefix+"__"+strings.ReplaceAll(name, " ", "_"))
	}

	return domain.LineageOK(strings.Join(tokens, "|"))
}

// failure logs the offending id with its cause and wraps it in a result.
// Failures never propagate as errors to the caller; the result carries the
// reason so callers can distinguish an unknown id from a broken database.
func (f *Formatter) failure(id domain.TaxonID, err error) domain.LineageResult {
	wrapped := zerr.With(zerr.Wrap(err, "failed to resolve lineage"), "taxid", int(id))
	f.logger.Error(wrapped)
	return domain.LineageFailure(wrapped)
}

// cacheKey combines the database identity with the taxon id. The ref is
// hashed to keep keys short regardless of path length; the id stays in
// plaintext so keys remain injective per database.
func cacheKey(ref string, id domain.TaxonID) string {
	return fmt.Sprintf("%016x|%d", xxhash.Sum64String(ref), id)
}
