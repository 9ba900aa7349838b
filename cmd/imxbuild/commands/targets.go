package commands

import (
	"context"

	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/spf13/cobra"
)

// target binds a command name to the application method that runs it.
type target struct {
	cmd   domain.Command
	short string
	run   func(Application, context.Context) error
}

// targets lists the subcommands in the order they appear in the usage message.
func targets() []target {
	return []target{
		{domain.CommandClean, "Remove build output, keep downloaded sources", Application.Clean},
		{domain.CommandDistclean, "Remove build output, downloads and configuration (asks first)", Application.Distclean},
		{domain.CommandRebuild, "Clean, then build all images", Application.Rebuild},
		{domain.CommandMenuconfig, "Configure Buildroot", Application.Menuconfig},
		{domain.CommandSavedefconfig, "Save the current configuration as defconfig", Application.Savedefconfig},
		{domain.CommandLinuxMenuconfig, "Configure the Linux kernel", Application.LinuxMenuconfig},
		{domain.CommandLinuxRebuild, "Rebuild the Linux kernel, then the images", Application.LinuxRebuild},
		{domain.CommandUbootRebuild, "Rebuild U-Boot, then the images", Application.UbootRebuild},
	}
}

func (c *CLI) newTargetCmd(t target) *cobra.Command {
	return &cobra.Command{
		Use:   t.cmd.String(),
		Short: t.short,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return t.run(c.app, cmd.Context())
		},
	}
}
