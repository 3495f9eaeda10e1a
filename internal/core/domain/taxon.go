// Package domain contains the core types for taxonomic lineage formatting.
package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// TaxonID identifies a node in the NCBI taxonomy graph.
type TaxonID int

// MissingTaxon is the conventional sentinel for rows that carry no taxon id.
const MissingTaxon TaxonID = -1

// RootTaxon is the NCBI root node. The taxdump records it as its own parent,
// so ancestor walks must treat it as a terminator.
const RootTaxon TaxonID = 1

// String returns the decimal representation of the taxon id.
func (id TaxonID) String() string {
	return strconv.Itoa(int(id))
}

// ParseTaxonID parses a decimal taxon id string.
func ParseTaxonID(s string) (TaxonID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return MissingTaxon, zerr.With(ErrInvalidTaxonID, "value", s)
	}
	return TaxonID(n), nil
}

// Taxon is one node of the taxonomy graph as stored in the database.
type Taxon struct {
	ID     TaxonID
	Parent TaxonID
	Rank   string
	Name   string
}

// RankPrefixes maps the seven recognized NCBI ranks to their output
// prefixes. Ancestors whose rank is outside this table are excluded from
// formatted lineages without error.
var RankPrefixes = map[string]string{
	"domain":  "d",
	"phylum":  "p",
	"class":   "c",
	"order":   "o",
	"family":  "f",
	"genus":   "g",
	"species": "s",
}
