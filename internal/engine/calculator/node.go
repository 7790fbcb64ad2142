package calculator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractal/internal/core/ports"
)

// NodeID is the unique identifier for the calculator registry Graft node.
const NodeID graft.ID = "engine.calculator"

func init() {
	graft.Register(graft.Node[ports.Calculator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Calculator, error) {
			return New(), nil
		},
	})
}
