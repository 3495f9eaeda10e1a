// Package taxdb implements the taxonomy port on an sqlite database built
// from the NCBI taxdump.
package taxdb

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite"
)

var _ ports.Taxonomy = (*Store)(nil)

// Store is a read-only handle onto one taxonomy database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the sqlite database at path for lookups. The file must already
// exist: lookups never create a database implicitly.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error()), "path", path)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ref identifies the database file backing this handle.
func (s *Store) Ref() string {
	return s.path
}

// Lineage returns the ancestor chain for the given taxon id, root to leaf
// inclusive. The recursive walk stops at the self-parented root node.
func (s *Store) Lineage(ctx context.Context, id domain.TaxonID) ([]domain.TaxonID, error) {
	rows, err := s.db.QueryContext(ctx, lineageSQL, int(id), maxChainDepth)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error()), "taxid", int(id))
	}
	defer rows.Close() //nolint:errcheck // Best effort close in defer

	var chain []domain.TaxonID
	for rows.Next() {
		var tid int
		if err := rows.Scan(&tid); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error()), "taxid", int(id))
		}
		chain = append(chain, domain.TaxonID(tid))
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error()), "taxid", int(id))
	}

	if len(chain) == 0 {
		return nil, zerr.With(domain.ErrUnknownTaxon, "taxid", int(id))
	}
	return chain, nil
}

// Names resolves scientific names for the given ids. Taxa stored without a
// name are absent from the result, the same as unknown ids.
func (s *Store) Names(ctx context.Context, ids []domain.TaxonID) (map[domain.TaxonID]string, error) {
	names, err := s.lookupColumn(ctx, "name", ids)
	if err != nil {
		return nil, err
	}
	for id, name := range names {
		if name == "" {
			delete(names, id)
		}
	}
	return names, nil
}

// Ranks resolves rank labels for the given ids.
func (s *Store) Ranks(ctx context.Context, ids []domain.TaxonID) (map[domain.TaxonID]string, error) {
	return s.lookupColumn(ctx, "rank", ids)
}

// lookupColumn fetches one text column for a set of ids. The column name is
// an internal constant, never caller input.
func (s *Store) lookupColumn(ctx context.Context, column string, ids []domain.TaxonID) (map[domain.TaxonID]string, error) {
	out := make(map[domain.TaxonID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := "SELECT taxid, " + column + " FROM taxa WHERE taxid IN (?" +
		strings.Repeat(",?", len(ids)-1) + ")"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = int(id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error())
	}
	defer rows.Close() //nolint:errcheck // Best effort close in defer

	for rows.Next() {
		var tid int
		var value string
		if err := rows.Scan(&tid, &value); err != nil {
			return nil, zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error())
		}
		out[domain.TaxonID(tid)] = value
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrTaxonomyUnavailable.Error())
	}

	return out, nil
}
