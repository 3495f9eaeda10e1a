// Package app implements the application layer for taxlin.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lineagetools/taxlin/internal/adapters/tabular" //nolint:depguard // Wired in app layer
	"github.com/lineagetools/taxlin/internal/adapters/taxdb"   //nolint:depguard // Wired in app layer
	"github.com/lineagetools/taxlin/internal/adapters/taxdump" //nolint:depguard // Wired in app layer
	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports"
	"github.com/lineagetools/taxlin/internal/engine/formatter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	formatters   *formatter.Factory
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, formatters *formatter.Factory, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		formatters:   formatters,
		logger:       logger,
	}
}

// Options carry per-invocation overrides on top of the config file.
type Options struct {
	// ConfigPath locates the taxlin.yaml config file.
	ConfigPath string
	// DatabasePath overrides the configured taxonomy database path when
	// non-empty.
	DatabasePath string
	// Delimiter overrides the configured field delimiter when non-zero.
	Delimiter rune
	// Column overrides the configured taxon id column when non-empty.
	Column string
}

// resolveConfig loads the config file and applies Options overrides.
func (a *App) resolveConfig(opts Options) (domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.DatabasePath != "" {
		cfg.DatabasePath = opts.DatabasePath
	}
	if opts.Delimiter != 0 {
		cfg.Annotate.Delimiter = opts.Delimiter
	}
	if opts.Column != "" {
		cfg.Annotate.Column = opts.Column
	}
	return cfg, nil
}

// Lookup resolves the given taxon id strings and writes one "id<TAB>lineage"
// line per id to out, in input order. Individual failures produce a line
// with an empty lineage; an error is returned only when every id fails.
func (a *App) Lookup(ctx context.Context, rawIDs []string, out io.Writer, opts Options) error {
	if len(rawIDs) == 0 {
		return domain.ErrNoTaxonIDs
	}

	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	store, err := taxdb.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			a.logger.Warn(fmt.Sprintf("failed to close taxonomy database: %v", cerr))
		}
	}()

	f := a.formatters.For(store)

	failed := 0
	w := bufio.NewWriter(out)
	for _, raw := range rawIDs {
		lineage := ""
		// Parsed ids, the -1 sentinel included, go through the lookup so
		// failures carry the taxonomy's reason; only unparsable input is
		// skipped up front.
		if id, perr := domain.ParseTaxonID(raw); perr != nil {
			failed++
			a.logger.Warn(fmt.Sprintf("skipping unparsable taxon id %q", raw))
		} else if res := f.Format(ctx, id); res.OK() {
			lineage = res.Lineage
		} else {
			failed++
		}
		if _, werr := fmt.Fprintf(w, "%s\t%s\n", raw, lineage); werr != nil {
			return zerr.Wrap(werr, domain.ErrOutputWriteFailed.Error())
		}
	}
	if err := w.Flush(); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	if failed == len(rawIDs) {
		return domain.ErrAllLookupsFailed
	}
	return nil
}

// Annotate rewrites the taxon id column of a delimited file with formatted
// lineages. Paths of "-" mean stdin and stdout.
func (a *App) Annotate(ctx context.Context, inPath, outPath string, opts Options) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	store, err := taxdb.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			a.logger.Warn(fmt.Sprintf("failed to close taxonomy database: %v", cerr))
		}
	}()

	in, closeIn, err := openInput(inPath)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}

	tabOpts := tabular.Options{
		Delimiter: cfg.Annotate.Delimiter,
		Column:    cfg.Annotate.Column,
	}
	stats, err := tabular.Annotate(ctx, in, out, tabOpts, a.formatters.For(store))
	if err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	a.logger.Info(fmt.Sprintf("annotated %d rows (%d distinct ids, %d failed)",
		stats.Rows, stats.Distinct, stats.Failed))
	return nil
}

// BuildDB builds the sqlite taxonomy database from an NCBI taxdump
// directory or archive.
func (a *App) BuildDB(ctx context.Context, dumpPath string, opts Options) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}
	return taxdump.Build(ctx, dumpPath, cfg.DatabasePath, a.logger)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "path", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return f, f.Close, nil
}
