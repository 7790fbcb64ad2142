package stream

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractal/internal/adapters/logger"
	"go.trai.ch/fractal/internal/core/ports"
)

// NodeID is the unique identifier for the stream server Graft node.
const NodeID graft.ID = "adapter.stream"

func init() {
	graft.Register(graft.Node[ports.StreamServer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.StreamServer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(log), nil
		},
	})
}
