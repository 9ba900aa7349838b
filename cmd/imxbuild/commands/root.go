// Package commands implements the CLI commands for imxbuild.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/intronix/buildroot-imx/internal/build"
	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for imxbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	args    []string
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context) error
	Clean(ctx context.Context) error
	Distclean(ctx context.Context) error
	Rebuild(ctx context.Context) error
	Menuconfig(ctx context.Context) error
	Savedefconfig(ctx context.Context) error
	LinuxMenuconfig(ctx context.Context) error
	LinuxRebuild(ctx context.Context) error
	UbootRebuild(ctx context.Context) error
	Settings() *domain.Settings
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "imxbuild [command]",
		Short:         "Build embedded Linux images for NXP i.MX boards",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          rootArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(domain.ErrUsage, err)
	})

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Build(cmd.Context())
	}
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		c.printUsage(cmd.OutOrStdout())
	})
	rootCmd.SetHelpCommand(c.newHelpCmd())

	for _, t := range targets() {
		rootCmd.AddCommand(c.newTargetCmd(t))
	}
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context. Usage errors print
// the usage message to the error stream before being returned.
func (c *CLI) Execute(ctx context.Context) error {
	args := c.args
	if args == nil {
		args = os.Args[1:]
	}

	var err error
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		// cobra registers the hidden completion commands regardless of
		// CompletionOptions, so they are rejected before dispatch.
		err = unknownCommand(args[0])
	} else {
		c.rootCmd.SetContext(ctx)
		err = c.rootCmd.Execute()
	}

	if errors.Is(err, domain.ErrUsage) {
		c.printUsage(c.rootCmd.ErrOrStderr())
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.args = args
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// rootArgs rejects every positional argument that did not select a subcommand.
// cobra strips "--" from args, so its position is checked separately.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return unknownCommand(args[0])
	}
	if cmd.ArgsLenAtDash() >= 0 {
		return unknownCommand("--")
	}
	return nil
}

// noArgs is cobra.NoArgs classified as a usage error. A trailing "--" counts
// as an argument.
func noArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) > 0:
		return errors.Join(domain.ErrUsage, zerr.With(domain.ErrUnexpectedArgument, "argument", args[0]))
	case cmd.ArgsLenAtDash() >= 0:
		return errors.Join(domain.ErrUsage, zerr.With(domain.ErrUnexpectedArgument, "argument", "--"))
	default:
		return nil
	}
}

func unknownCommand(name string) error {
	return errors.Join(domain.ErrUsage, zerr.With(domain.ErrUnknownCommand, "command", name))
}
