package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/intronix/buildroot-imx/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/adapters/hostcheck" //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/intronix/buildroot-imx/internal/core/ports"
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
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			hostcheck.NodeID,
			fs.BuildLogNodeID,
			fs.ImageListerNodeID,
			prompt.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[ports.HostChecker](ctx)
	if err != nil {
		return nil, err
	}

	buildLog, err := graft.Dep[ports.BuildLog](ctx)
	if err != nil {
		return nil, err
	}

	images, err := graft.Dep[ports.ImageLister](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, log, checker, buildLog, images, prompter, tracer), nil
}
