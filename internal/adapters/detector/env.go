// Package detector inspects the process environment to decide how make
// output should be captured.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how captured output reaches the console.
type OutputMode int

const (
	// ModePipe copies make output through plain pipes.
	ModePipe OutputMode = iota
	// ModeTerminal runs make on a pseudo-terminal.
	ModeTerminal
)

// String returns a short name for the mode.
func (m OutputMode) String() string {
	if m == ModeTerminal {
		return "terminal"
	}
	return "pipe"
}

// DetectEnvironment returns ModeTerminal when stdout is a TTY and no CI
// environment variable is set.
func DetectEnvironment() OutputMode {
	return resolve(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func resolve(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePipe
	}
	return ModeTerminal
}
