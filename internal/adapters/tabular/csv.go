// Package tabular annotates delimited tables with formatted lineages.
package tabular

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/lineagetools/taxlin/internal/core/domain"
	"go.trai.ch/zerr"
)

// rows between context cancellation checks
const ctxCheckInterval = 10000

// LineageMapper resolves a batch of taxon ids to formatted lineages.
// It is satisfied by the formatter engine.
type LineageMapper interface {
	FormatBatch(ctx context.Context, ids []domain.TaxonID) map[domain.TaxonID]domain.LineageResult
}

// Options control how the input table is read and rewritten.
type Options struct {
	// Delimiter separates fields in both input and output.
	Delimiter rune
	// Column is the header name of the taxon id column to replace.
	Column string
}

// Stats summarizes one annotation run.
type Stats struct {
	// Rows is the number of data rows processed, header excluded.
	Rows int
	// Distinct is the number of distinct taxon ids looked up.
	Distinct int
	// Failed is the number of rows whose cell could not be annotated,
	// either because the id was blank or unparsable, or because the
	// lookup failed.
	Failed int
}

// Annotate reads a delimited table from r, replaces the taxon id column
// with formatted lineages, and writes the result to w. Every distinct id
// is resolved exactly once; rows that cannot be annotated get an empty
// cell and the run continues.
func Annotate(ctx context.Context, r io.Reader, w io.Writer, opts Options, mapper LineageMapper) (Stats, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return Stats{}, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
	}

	col := -1
	for i, name := range header {
		if name == opts.Column {
			col = i
			break
		}
	}
	if col < 0 {
		return Stats{}, zerr.With(domain.ErrColumnNotFound, "column", opts.Column)
	}

	records, distinct, err := readRows(ctx, cr, col)
	if err != nil {
		return Stats{}, err
	}

	results := mapper.FormatBatch(ctx, distinct)

	stats := Stats{Rows: len(records), Distinct: len(distinct)}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Delimiter
	if err := cw.Write(header); err != nil {
		return Stats{}, zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	for _, rec := range records {
		cell := ""
		if rec.id == domain.MissingTaxon {
			stats.Failed++
		} else if res := results[rec.id]; res.OK() {
			cell = res.Lineage
		} else {
			stats.Failed++
		}
		if col < len(rec.fields) {
			rec.fields[col] = cell
		}
		if err := cw.Write(rec.fields); err != nil {
			return Stats{}, zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Stats{}, zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}

	return stats, nil
}

type row struct {
	fields []string
	id     domain.TaxonID
}

// readRows buffers the data rows so the batch lookup can run over distinct
// ids before any output is written. The ids come back in first-appearance
// order, so lookup failures are logged in input order. Blank or unparsable
// cells map to MissingTaxon and are excluded from the lookup.
func readRows(ctx context.Context, cr *csv.Reader, col int) ([]row, []domain.TaxonID, error) {
	var records []row
	var distinct []domain.TaxonID
	seen := make(map[domain.TaxonID]struct{})

	for {
		if len(records)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
			}
		}

		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
		}

		id := domain.MissingTaxon
		if col < len(fields) && fields[col] != "" {
			if parsed, perr := domain.ParseTaxonID(fields[col]); perr == nil {
				id = parsed
			}
		}
		if id != domain.MissingTaxon {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				distinct = append(distinct, id)
			}
		}
		records = append(records, row{fields: fields, id: id})
	}

	return records, distinct, nil
}
