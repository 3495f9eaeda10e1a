package domain

// Configuration defaults. The database path default is relative to the
// working directory; long-lived deployments should set it explicitly.
const (
	DefaultDatabasePath  = "taxa.db"
	DefaultCacheCapacity = 65536
	DefaultDelimiter     = ','
	DefaultColumn        = "ncbi_taxon_id"
)

// Config holds the resolved runtime configuration.
type Config struct {
	// DatabasePath locates the sqlite taxonomy database file.
	DatabasePath string
	// CacheCapacity bounds the lineage memo cache. Zero or negative means
	// the default capacity.
	CacheCapacity int
	// Annotate configures the tabular pipeline.
	Annotate AnnotateConfig
}

// AnnotateConfig configures the tabular annotate pipeline.
type AnnotateConfig struct {
	// Delimiter separates fields in the input and output files.
	Delimiter rune
	// Column names the header column holding taxon ids.
	Column string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DatabasePath:  DefaultDatabasePath,
		CacheCapacity: DefaultCacheCapacity,
		Annotate: AnnotateConfig{
			Delimiter: DefaultDelimiter,
			Column:    DefaultColumn,
		},
	}
}
