package ports

import "github.com/lineagetools/taxlin/internal/core/domain"

// LineageCache memoizes formatted lineage results between single-id lookups.
// Implementations must be safe for concurrent use and bounded or clearable;
// failed lookups are cached alongside successes.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type LineageCache interface {
	// Get returns the cached result for the given key.
	Get(key string) (domain.LineageResult, bool)

	// Put stores the result under the given key.
	Put(key string, result domain.LineageResult)

	// Clear drops all cached entries.
	Clear()
}
