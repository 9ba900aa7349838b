package hostcheck

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/intronix/buildroot-imx/internal/core/ports"
)

// NodeID is the unique identifier for the host checker Graft node.
const NodeID graft.ID = "adapter.hostcheck"

func init() {
	graft.Register(graft.Node[ports.HostChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostChecker, error) {
			return NewChecker(), nil
		},
	})
}
