// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/intronix/buildroot-imx/internal/adapters/config"
	_ "github.com/intronix/buildroot-imx/internal/adapters/fs"
	_ "github.com/intronix/buildroot-imx/internal/adapters/hostcheck"
	_ "github.com/intronix/buildroot-imx/internal/adapters/logger"
	_ "github.com/intronix/buildroot-imx/internal/adapters/prompt"
	_ "github.com/intronix/buildroot-imx/internal/adapters/shell"
	_ "github.com/intronix/buildroot-imx/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/intronix/buildroot-imx/internal/app"
)
