package formatter

import "github.com/lineagetools/taxlin/internal/core/ports"

// Factory builds Formatters that share the process-wide cache and logger.
// Each database instance gets its own Formatter; the shared cache keys by
// database ref, so instances stay isolated.
type Factory struct {
	cache  ports.LineageCache
	logger ports.Logger
}

// NewFactory creates a Factory with the given cache and logger.
func NewFactory(cache ports.LineageCache, logger ports.Logger) *Factory {
	return &Factory{
		cache:  cache,
		logger: logger,
	}
}

// For returns a Formatter bound to the given taxonomy instance.
func (fa *Factory) For(tax ports.Taxonomy) *Formatter {
	return New(tax, fa.cache, fa.logger)
}
