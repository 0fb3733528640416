package imaging

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/picon/internal/adapters/svg"
	"go.trai.ch/picon/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the source loader Graft node.
	LoaderNodeID graft.ID = "adapter.imaging.loader"
	// TransformerNodeID is the unique identifier for the transformer Graft node.
	TransformerNodeID graft.ID = "adapter.imaging.transformer"
	// EncoderNodeID is the unique identifier for the encoder Graft node.
	EncoderNodeID graft.ID = "adapter.imaging.encoder"
)

func init() {
	graft.Register(graft.Node[ports.SourceLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{svg.NodeID},
		Run: func(ctx context.Context) (ports.SourceLoader, error) {
			rasterizer, err := graft.Dep[ports.Rasterizer](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(rasterizer), nil
		},
	})

	graft.Register(graft.Node[ports.Transformer]{
		ID:        TransformerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Transformer, error) {
			return NewTransformer(), nil
		},
	})

	graft.Register(graft.Node[ports.Encoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Encoder, error) {
			return NewEncoder(), nil
		},
	})
}
