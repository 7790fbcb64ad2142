package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractal/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/adapters/fingerprint"        //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/adapters/stream"             //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/fractal/internal/engine/calculator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			calculator.NodeID,
			logger.NodeID,
			fingerprint.NodeID,
			cas.NodeID,
			progrock.NodeID,
			stream.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	calc, err := graft.Dep[ports.Calculator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	streams, err := graft.Dep[ports.StreamServer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, calc, log, fingerprinter, store, telemetry, streams), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
