package config

// Taxlinfile represents the structure of the taxlin.yaml configuration file.
type Taxlinfile struct {
	Version  string      `yaml:"version"`
	Database string      `yaml:"database"`
	Cache    CacheDTO    `yaml:"cache"`
	Annotate AnnotateDTO `yaml:"annotate"`
}

// CacheDTO configures the lineage memo cache.
type CacheDTO struct {
	Capacity int `yaml:"capacity"`
}

// AnnotateDTO configures the tabular annotate pipeline.
type AnnotateDTO struct {
	Delimiter string `yaml:"delimiter"`
	Column    string `yaml:"column"`
}
