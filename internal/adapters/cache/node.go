package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lineagetools/taxlin/internal/core/ports"
)

// NodeID is the unique identifier for the lineage cache Graft node.
const NodeID graft.ID = "adapter.lineage_cache"

func init() {
	graft.Register(graft.Node[ports.LineageCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LineageCache, error) {
			// Capacity is bounded by the default here; callers that load a
			// config before first use size the cache via NewMemory directly.
			return NewMemory(0), nil
		},
	})
}
