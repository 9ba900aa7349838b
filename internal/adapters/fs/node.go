package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/intronix/buildroot-imx/internal/core/ports"
)

const (
	// BuildLogNodeID is the unique identifier for the build log Graft node.
	BuildLogNodeID graft.ID = "adapter.fs.buildlog"
	// ImageListerNodeID is the unique identifier for the image lister Graft node.
	ImageListerNodeID graft.ID = "adapter.fs.images"
)

func init() {
	graft.Register(graft.Node[ports.BuildLog]{
		ID:        BuildLogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildLog, error) {
			return NewBuildLog(), nil
		},
	})

	graft.Register(graft.Node[ports.ImageLister]{
		ID:        ImageListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageLister, error) {
			return NewImageLister(), nil
		},
	})
}
