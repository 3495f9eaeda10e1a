package taxdb

import (
	"database/sql"

	"github.com/lineagetools/taxlin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Builder writes a fresh taxonomy database file. All inserts run in one
// transaction, so a failed build never leaves a half-populated database
// behind a successful open.
type Builder struct {
	db      *sql.DB
	tx      *sql.Tx
	stmt    *sql.Stmt
	count   int
	created bool
}

// NewBuilder creates the database file at path, applies the schema, and
// begins the insert transaction.
func NewBuilder(path string) (*Builder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error()), "path", path)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error()), "path", path)
	}

	tx, err := db.Begin()
	if err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error()), "path", path)
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO taxa (taxid, parent, rank, name) VALUES (?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error()), "path", path)
	}

	return &Builder{db: db, tx: tx, stmt: stmt}, nil
}

// Add inserts one taxon.
func (b *Builder) Add(t domain.Taxon) error {
	if _, err := b.stmt.Exec(int(t.ID), int(t.Parent), t.Rank, t.Name); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error()), "taxid", int(t.ID))
	}
	b.count++
	return nil
}

// Count reports the number of taxa added so far.
func (b *Builder) Count() int {
	return b.count
}

// Commit finalizes the transaction and closes the database.
func (b *Builder) Commit() error {
	defer b.db.Close() //nolint:errcheck // Best effort close in defer

	if err := b.stmt.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error())
	}
	if err := b.tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrDatabaseBuildFailed.Error())
	}
	b.created = true
	return nil
}

// Close rolls back an uncommitted build and releases the database. Calling
// Close after a successful Commit is a no-op.
func (b *Builder) Close() error {
	if b.created {
		return nil
	}
	_ = b.tx.Rollback()
	return b.db.Close()
}
