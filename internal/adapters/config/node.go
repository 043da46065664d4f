package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the ConfigLoader Graft node.
	LoaderNodeID graft.ID = "adapter.config_loader"
	// NodeID is the unique identifier for the loaded Config Graft node.
	NodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return &FileLoader{}, nil
		},
	})

	graft.Register(graft.Node[domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Config{}, err
			}

			path := os.Getenv("BINIT_CONFIG")
			if path == "" {
				path = DefaultFilename
			}
			return loader.Load(path)
		},
	})
}
