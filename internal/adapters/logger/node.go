package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"

	// LevelEnv sets the minimum level of logged records.
	LevelEnv = "CATSYNC_LOG_LEVEL"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			log := New()
			if name := os.Getenv(LevelEnv); name != "" {
				if err := log.SetLevel(name); err != nil {
					return nil, err
				}
			}
			return log, nil
		},
	})
}
