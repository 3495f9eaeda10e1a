package taxdb

// The database is a single flat table: one row per taxon with its parent
// pointer, rank label, and scientific name. The NCBI root (taxid 1) is
// stored as its own parent, matching the taxdump convention.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS taxa (
	taxid  INTEGER PRIMARY KEY,
	parent INTEGER NOT NULL,
	rank   TEXT NOT NULL,
	name   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_taxa_parent ON taxa(parent);
`

// maxChainDepth bounds the recursive ancestor walk. The deepest real NCBI
// chains are around 40 nodes; the guard protects against a corrupted
// database with a parent cycle.
const maxChainDepth = 128

const lineageSQL = `
WITH RECURSIVE chain(taxid, parent, depth) AS (
	SELECT taxid, parent, 0 FROM taxa WHERE taxid = ?
	UNION ALL
	SELECT t.taxid, t.parent, c.depth + 1
	FROM taxa t
	JOIN chain c ON t.taxid = c.parent
	WHERE c.taxid <> c.parent AND c.depth < ?
)
SELECT taxid FROM chain ORDER BY depth DESC`
