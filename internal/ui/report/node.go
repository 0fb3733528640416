package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/picon/internal/core/ports"
)

// NodeID is the unique identifier for the reporter Graft node.
const NodeID graft.ID = "ui.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Reporter, error) {
			return New(nil), nil
		},
	})
}
