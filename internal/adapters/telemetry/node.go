package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/vito/progrock"
	"go.trai.ch/binit/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
)

// NodeID is the unique identifier for the progress sink Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.ProgressSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ProgressSink, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			switch cfg.Progress {
			case domain.ProgressProgrock:
				return NewRecorder(progrock.NewTape()), nil
			case domain.ProgressOff:
				return NewNoop(), nil
			default:
				return NewConsole(os.Stderr), nil
			}
		},
	})
}
