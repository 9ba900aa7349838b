package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/spf13/cobra"
)

const usageWidth = 18

func (c *CLI) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   domain.CommandHelp.String(),
		Short: "Show this help (also --help, -h)",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.printUsage(cmd.OutOrStdout())
		},
	}
}

// printUsage writes the static usage message. Paths and credentials come
// from the effective settings.
func (c *CLI) printUsage(w io.Writer) {
	s := c.app.Settings()

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: imxbuild [command]\n\n")
	fmt.Fprintf(&b, "Build wrapper for the %s Buildroot tree.\n\n", s.Board)
	fmt.Fprintf(&b, "Commands:\n")

	row := func(name, desc string) {
		fmt.Fprintf(&b, "  %-*s%s\n", usageWidth, name, desc)
	}
	row("(none)", fmt.Sprintf("Build all images (make -jN), output is logged to %s", s.LogFile))
	for _, t := range targets() {
		row(t.cmd.String(), t.short)
	}
	row("version", "Print the application version (also --version)")
	row(domain.CommandHelp.String(), "Show this help (also --help, -h)")

	fmt.Fprintf(&b, "\nImages are written to %s/\n", strings.TrimSuffix(s.ImagesDir, "/"))
	fmt.Fprintf(&b, "\nDefault login:\n")
	fmt.Fprintf(&b, "  user:     %s\n", s.Login.User)
	fmt.Fprintf(&b, "  password: %s\n", s.Login.Password)

	_, _ = io.WriteString(w, b.String())
}
