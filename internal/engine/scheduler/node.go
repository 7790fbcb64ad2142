package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractal/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/fractal/internal/engine/calculator"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			calculator.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			calc, err := graft.Dep[ports.Calculator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(calc, log), nil
		},
	})
}
