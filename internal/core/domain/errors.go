package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrUsage is returned when the command line does not name a known command.
	ErrUsage = zerr.New("invalid usage")

	// ErrUnknownCommand is returned for an argument that is not a command.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrUnexpectedArgument is returned when a command is followed by further arguments.
	ErrUnexpectedArgument = zerr.New("unexpected argument")

	// ErrMissingHostTools is matched by MissingToolsError.
	ErrMissingHostTools = zerr.New("missing required host tools")

	// ErrBuildExecutionFailed is returned when a captured make step fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCommandFailed is returned when an external program exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCommandStartFailed is returned when an external program cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrProgramNotFound is returned when the program is not in the configured PATH.
	ErrProgramNotFound = zerr.New("program not found in PATH")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid config value")

	// ErrLogOpenFailed is returned when the build log cannot be opened.
	ErrLogOpenFailed = zerr.New("failed to open build log")

	// ErrImagesReadFailed is returned when the images directory cannot be listed.
	ErrImagesReadFailed = zerr.New("failed to list images")

	// ErrImageHashFailed is returned when an image cannot be hashed.
	ErrImageHashFailed = zerr.New("failed to hash image")

	// ErrPromptFailed is returned when the confirmation answer cannot be read.
	ErrPromptFailed = zerr.New("failed to read confirmation")
)

// MissingToolsError lists every required host tool that could not be found.
type MissingToolsError struct {
	Tools []string
}

// Error implements error.
func (e *MissingToolsError) Error() string {
	return ErrMissingHostTools.Error() + ": " + strings.Join(e.Tools, " ")
}

// Is reports whether target is ErrMissingHostTools.
func (e *MissingToolsError) Is(target error) bool {
	return target == ErrMissingHostTools
}
