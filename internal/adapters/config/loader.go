// Package config provides the configuration loader for taxlin.
package config

import (
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at the given path. A missing file is
// not an error: the documented defaults apply, and unset fields in a
// present file fall back to the same defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Taxlinfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Database != "" {
		cfg.DatabasePath = file.Database
	}
	if file.Cache.Capacity > 0 {
		cfg.CacheCapacity = file.Cache.Capacity
	}
	if file.Annotate.Column != "" {
		cfg.Annotate.Column = file.Annotate.Column
	}
	if file.Annotate.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(file.Annotate.Delimiter)
		if size != len(file.Annotate.Delimiter) {
			return domain.Config{}, zerr.With(domain.ErrInvalidDelimiter, "delimiter", file.Annotate.Delimiter)
		}
		cfg.Annotate.Delimiter = r
	}

	return cfg, nil
}
