package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTaxon is returned when a taxon id is not present in the taxonomy database.
	ErrUnknownTaxon = zerr.New("taxon id not found in taxonomy database")

	// ErrTaxonomyUnavailable is returned when the taxonomy database cannot be opened or queried.
	ErrTaxonomyUnavailable = zerr.New("taxonomy database unavailable")

	// ErrNameMissing is returned when a recognized-rank ancestor has no recorded name.
	ErrNameMissing = zerr.New("no name recorded for taxon")

	// ErrInvalidTaxonID is returned when a taxon id cannot be parsed.
	ErrInvalidTaxonID = zerr.New("invalid taxon id")

	// ErrNoTaxonIDs is returned when an operation is invoked without any taxon ids.
	ErrNoTaxonIDs = zerr.New("no taxon ids specified")

	// ErrAllLookupsFailed is returned when none of the requested taxon ids could be resolved.
	ErrAllLookupsFailed = zerr.New("no taxon id could be resolved")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDelimiter is returned when the configured field delimiter is not a single character.
	ErrInvalidDelimiter = zerr.New("delimiter must be a single character")

	// ErrColumnNotFound is returned when the taxon id column is absent from the input header.
	ErrColumnNotFound = zerr.New("taxon id column not found in input header")

	// ErrInputReadFailed is returned when tabular input cannot be read.
	ErrInputReadFailed = zerr.New("failed to read tabular input")

	// ErrOutputWriteFailed is returned when tabular output cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write tabular output")

	// ErrDumpOpenFailed is returned when a taxdump file or directory cannot be opened.
	ErrDumpOpenFailed = zerr.New("failed to open taxdump")

	// ErrDumpParseFailed is returned when a taxdump file cannot be parsed.
	ErrDumpParseFailed = zerr.New("failed to parse taxdump")

	// ErrDumpIncomplete is returned when a taxdump is missing nodes.dmp or names.dmp.
	ErrDumpIncomplete = zerr.New("taxdump is missing nodes.dmp or names.dmp")

	// ErrDatabaseBuildFailed is returned when the taxonomy database cannot be written.
	ErrDatabaseBuildFailed = zerr.New("failed to build taxonomy database")
)
