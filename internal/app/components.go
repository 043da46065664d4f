package app

import (
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
)

// Components bundles everything the CLI shell needs to run.
type Components struct {
	App    *App
	Config domain.Config
	Log    ports.Logger
}
