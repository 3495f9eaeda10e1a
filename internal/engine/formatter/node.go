package formatter

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/lineagetools/taxlin/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"github.com/lineagetools/taxlin/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/lineagetools/taxlin/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the formatter factory Graft node.
const FactoryNodeID graft.ID = "engine.formatter_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			lineageCache, err := graft.Dep[ports.LineageCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(lineageCache, log), nil
		},
	})
}
