package taxdump

import (
	"context"
	"fmt"

	"github.com/lineagetools/taxlin/internal/adapters/taxdb"
	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Build parses the taxdump at dumpPath and writes a fresh taxonomy database
// at dbPath. nodes.dmp and names.dmp parse concurrently; the database insert
// itself is a single sequential transaction.
func Build(ctx context.Context, dumpPath, dbPath string, logger ports.Logger) error {
	src, err := openDump(dumpPath)
	if err != nil {
		return err
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	var (
		nodes map[domain.TaxonID]node
		names map[domain.TaxonID]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nodes, err = parseNodes(gctx, src.nodes)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = parseNames(gctx, src.names)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	builder, err := taxdb.NewBuilder(dbPath)
	if err != nil {
		return err
	}
	defer builder.Close() //nolint:errcheck // Best effort close in defer

	line := 0
	for id, n := range nodes {
		line++
		if line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := builder.Add(domain.Taxon{
			ID:     id,
			Parent: n.parent,
			Rank:   n.rank,
			Name:   names[id],
		}); err != nil {
			return err
		}
	}
	if err := builder.Commit(); err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("taxonomy database built: %d taxa from %s", builder.Count(), dumpPath))
	return nil
}
