package ports

import "io"

// BuildLog defines the interface for the on-disk build log.
//
//go:generate mockgen -source=build_log.go -destination=mocks/mock_build_log.go -package=mocks
type BuildLog interface {
	// Create truncates the log at path and opens it for writing.
	Create(path string) (io.WriteCloser, error)
	// Append opens the log at path for appending, creating it if needed.
	Append(path string) (io.WriteCloser, error)
}
