package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/intronix/buildroot-imx/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"

	// FormatEnvVar selects the log format. The value "json" switches to JSON lines.
	FormatEnvVar = "IMXBUILD_LOG_FORMAT"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			l := &Logger{}
			l.SetOutput(os.Stderr)
			l.SetJSON(os.Getenv(FormatEnvVar) == "json")
			return l, nil
		},
	})
}
