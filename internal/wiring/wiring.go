// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fractal/internal/adapters/cas"
	_ "go.trai.ch/fractal/internal/adapters/config"
	_ "go.trai.ch/fractal/internal/adapters/fingerprint"
	_ "go.trai.ch/fractal/internal/adapters/logger"
	_ "go.trai.ch/fractal/internal/adapters/stream"
	_ "go.trai.ch/fractal/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/fractal/internal/app"
	_ "go.trai.ch/fractal/internal/engine/calculator"
	_ "go.trai.ch/fractal/internal/engine/scheduler"
)
