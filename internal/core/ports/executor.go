package ports

import (
	"context"
	"io"

	"github.com/intronix/buildroot-imx/internal/core/domain"
)

// Executor defines the interface for running external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and blocks until it exits.
	//
	// Captured invocations write their merged output to stdout. Interactive
	// invocations read the process stdin and write to stdout and stderr
	// unmodified.
	//
	// It returns an error if the program cannot be started or exits non-zero.
	Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error
}
