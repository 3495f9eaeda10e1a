package ports

import (
	"context"

	"github.com/lineagetools/taxlin/internal/core/domain"
)

// Taxonomy is the read interface onto one NCBI taxonomy database instance.
//
//go:generate mockgen -source=taxonomy.go -destination=mocks/mock_taxonomy.go -package=mocks
type Taxonomy interface {
	// Lineage returns the ancestor chain for the given taxon id, ordered
	// root to leaf and inclusive of the queried id. It returns
	// domain.ErrUnknownTaxon when the id is not present.
	Lineage(ctx context.Context, id domain.TaxonID) ([]domain.TaxonID, error)

	// Names resolves scientific names for the given ids. Ids without an
	// entry are absent from the returned map.
	Names(ctx context.Context, ids []domain.TaxonID) (map[domain.TaxonID]string, error)

	// Ranks resolves rank labels for the given ids. Ids without an entry
	// are absent from the returned map.
	Ranks(ctx context.Context, ids []domain.TaxonID) (map[domain.TaxonID]string, error)

	// Ref returns a stable identity for this database instance. Lineage
	// cache keys include it so the same id looked up against two databases
	// never collides.
	Ref() string
}
