// Package fs provides the filesystem adapters: the build log and the image listing.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildLog = (*BuildLog)(nil)

// BuildLog opens the log file that captured make output is teed into.
type BuildLog struct{}

// NewBuildLog creates a new BuildLog.
func NewBuildLog() *BuildLog {
	return &BuildLog{}
}

// Create truncates the log at path, creating parent directories as needed.
func (b *BuildLog) Create(path string) (io.WriteCloser, error) {
	return open(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

// Append opens the log at path for appending, creating it if needed.
func (b *BuildLog) Append(path string) (io.WriteCloser, error) {
	return open(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func open(path string, flag int) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLogOpenFailed.Error()), "path", path)
		}
	}

	f, err := os.OpenFile(path, flag, domain.FilePerm) //nolint:gosec // Path comes from settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLogOpenFailed.Error()), "path", path)
	}
	return f, nil
}
