package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/picon/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the scanner Graft node.
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Scanner, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
