// Package taxdump parses NCBI taxonomy dump files and loads them into a
// taxonomy database.
package taxdump

import (
	"archive/tar"
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/lineagetools/taxlin/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	nodesFile = "nodes.dmp"
	namesFile = "names.dmp"

	// scientificName is the names.dmp name class kept for lineage output.
	scientificName = "scientific name"

	// ctxCheckInterval is how many lines a parser processes between
	// context checks.
	ctxCheckInterval = 100000
)

// node is one parsed nodes.dmp row.
type node struct {
	parent domain.TaxonID
	rank   string
}

// source holds readers for the two dump files a build needs.
type source struct {
	nodes   io.Reader
	names   io.Reader
	closers []io.Closer
}

// Close releases any files the source holds open.
func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openDump opens a taxdump at path, which may be an extracted directory or a
// taxdump.tar.gz archive.
func openDump(path string) (*source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpOpenFailed.Error()), "path", path)
	}

	if info.IsDir() {
		return openDumpDir(path)
	}
	if strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz") {
		return openDumpArchive(path)
	}

	return nil, zerr.With(zerr.With(domain.ErrDumpOpenFailed,
		"path", path), "hint", "expected a directory or a .tar.gz archive")
}

func openDumpDir(dir string) (*source, error) {
	nodes, err := os.Open(filepath.Join(dir, nodesFile)) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpIncomplete.Error()), "path", dir)
	}

	names, err := os.Open(filepath.Join(dir, namesFile)) //nolint:gosec // Path is provided by the user
	if err != nil {
		_ = nodes.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpIncomplete.Error()), "path", dir)
	}

	return &source{
		nodes:   nodes,
		names:   names,
		closers: []io.Closer{nodes, names},
	}, nil
}

// openDumpArchive reads nodes.dmp and names.dmp out of a gzipped tarball.
// The tar stream is sequential, so both entries are buffered in memory
// before the concurrent parse.
func openDumpArchive(path string) (*source, error) {
	f, err := os.Open(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpOpenFailed.Error()), "path", path)
	}
	defer gz.Close() //nolint:errcheck // Best effort close in defer

	var nodes, names *bytes.Buffer
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpOpenFailed.Error()), "path", path)
		}

		var dst *bytes.Buffer
		switch filepath.Base(hdr.Name) {
		case nodesFile:
			nodes = &bytes.Buffer{}
			dst = nodes
		case namesFile:
			names = &bytes.Buffer{}
			dst = names
		default:
			continue
		}

		if _, err := io.Copy(dst, tr); err != nil { //nolint:gosec // Dump archives are user-supplied inputs
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpOpenFailed.Error()), "entry", hdr.Name)
		}
	}

	if nodes == nil || names == nil {
		return nil, zerr.With(domain.ErrDumpIncomplete, "path", path)
	}

	return &source{nodes: nodes, names: names}, nil
}

// splitDumpLine splits one dmp row into its fields. Rows use "\t|\t" as the
// field separator and close with a trailing "\t|".
func splitDumpLine(line string) []string {
	line = strings.TrimSuffix(line, "\t|")
	return strings.Split(line, "\t|\t")
}

// parseNodes reads nodes.dmp: taxid, parent taxid, and rank per row.
func parseNodes(ctx context.Context, r io.Reader) (map[domain.TaxonID]node, error) {
	out := make(map[domain.TaxonID]node)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		fields := splitDumpLine(scanner.Text())
		if len(fields) < 3 {
			return nil, zerr.With(zerr.With(domain.ErrDumpParseFailed, "file", nodesFile), "line", line)
		}

		id, err := domain.ParseTaxonID(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpParseFailed.Error()), "line", line)
		}
		parent, err := domain.ParseTaxonID(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpParseFailed.Error()), "line", line)
		}

		out[id] = node{parent: parent, rank: strings.TrimSpace(fields[2])}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDumpParseFailed.Error())
	}

	return out, nil
}

// parseNames reads names.dmp, keeping only scientific names.
func parseNames(ctx context.Context, r io.Reader) (map[domain.TaxonID]string, error) {
	out := make(map[domain.TaxonID]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		fields := splitDumpLine(scanner.Text())
		if len(fields) < 4 {
			return nil, zerr.With(zerr.With(domain.ErrDumpParseFailed, "file", namesFile), "line", line)
		}
		if strings.TrimSpace(fields[3]) != scientificName {
			continue
		}

		id, err := domain.ParseTaxonID(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpParseFailed.Error()), "line", line)
		}

		out[id] = strings.TrimSpace(fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDumpParseFailed.Error())
	}

	return out, nil
}
