package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/picon/internal/adapters/cache"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/picon/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/picon/internal/adapters/imaging" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/picon/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/picon/internal/ui/report" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ScannerNodeID,
			fs.HasherNodeID,
			imaging.LoaderNodeID,
			imaging.TransformerNodeID,
			imaging.EncoderNodeID,
			cache.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.SourceLoader](ctx)
			if err != nil {
				return nil, err
			}

			transformer, err := graft.Dep[ports.Transformer](ctx)
			if err != nil {
				return nil, err
			}

			encoder, err := graft.Dep[ports.Encoder](ctx)
			if err != nil {
				return nil, err
			}

			opener, err := graft.Dep[ports.CacheOpener](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewPlanner(scanner, hasher, loader, transformer, encoder, opener, reporter, log), nil
		},
	})
}
