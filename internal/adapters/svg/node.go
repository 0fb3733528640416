package svg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/picon/internal/adapters/logger"
	"go.trai.ch/picon/internal/adapters/shell"
	"go.trai.ch/picon/internal/core/ports"
)

// NodeID is the unique identifier for the rasterizer Graft node.
const NodeID graft.ID = "adapter.svg.rasterizer"

func init() {
	graft.Register(graft.Node[ports.Rasterizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.Rasterizer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log, runner), nil
		},
	})
}
