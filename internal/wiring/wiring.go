// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/binit/internal/adapters/config"
	_ "go.trai.ch/binit/internal/adapters/fs"
	_ "go.trai.ch/binit/internal/adapters/logger"
	_ "go.trai.ch/binit/internal/adapters/telemetry"
	_ "go.trai.ch/binit/internal/adapters/term"
	_ "go.trai.ch/binit/internal/adapters/trash"
	// Register app and engine nodes.
	_ "go.trai.ch/binit/internal/app"
	_ "go.trai.ch/binit/internal/engine/restore"
	_ "go.trai.ch/binit/internal/engine/traverse"
)
