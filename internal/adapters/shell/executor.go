// Package shell runs external programs such as make on behalf of the app.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/creack/pty"
	"github.com/intronix/buildroot-imx/internal/core/domain"
	"go.trai.ch/zerr"
)

// waitDelay is how long Wait keeps copying output after the context is done.
const waitDelay = time.Second

// Executor implements ports.Executor using os/exec and, for captured
// invocations on a terminal, a pseudo-terminal.
type Executor struct {
	stdin  io.Reader
	usePTY bool
}

// NewExecutor creates a new Executor. With usePTY captured invocations run
// on a pseudo-terminal so make keeps colored, line-buffered output.
func NewExecutor(usePTY bool) *Executor {
	return &Executor{
		stdin:  os.Stdin,
		usePTY: usePTY,
	}
}

// WithStdin replaces the input handed to interactive invocations.
func (e *Executor) WithStdin(r io.Reader) *Executor {
	e.stdin = r
	return e
}

// Execute runs the invocation and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation, stdout, stderr io.Writer) error {
	cmd, err := command(ctx, inv)
	if err != nil {
		return err
	}

	switch {
	case inv.Interactive:
		cmd.Stdin = e.stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		err = cmd.Run()
	case e.usePTY:
		ptmx, startErr := pty.Start(cmd)
		if startErr != nil {
			return zerr.With(zerr.Wrap(startErr, domain.ErrCommandStartFailed.Error()), "command", inv.String())
		}
		err = copyAndWait(cmd, ptmx, stdout)
	default:
		// Same writer for both streams: os/exec then copies through a single pipe.
		cmd.Stdout = stdout
		cmd.Stderr = stdout
		err = cmd.Run()
	}

	return commandError(inv, err)
}

func command(ctx context.Context, inv *domain.Invocation) (*exec.Cmd, error) {
	env := resolveEnvironment(os.Environ(), inv.Env)

	path := envValue(env, "PATH")
	executable, err := LookPath(inv.Program, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProgramNotFound.Error()+": "+inv.Program), "path", path)
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // program comes from settings
	cmd.Args[0] = inv.Program
	cmd.Dir = inv.Dir
	cmd.Env = env
	// Bound the wait for output pipes held open by grandchildren after a kill.
	cmd.WaitDelay = waitDelay

	return cmd, nil
}

func copyAndWait(cmd *exec.Cmd, ptmx *os.File, stdout io.Writer) error {
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the master fails with EIO once the child side is gone.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err := cmd.Wait()
	select {
	case <-ioDone:
	case <-time.After(waitDelay):
	}
	_ = ptmx.Close()
	<-ioDone

	return err
}

func commandError(inv *domain.Invocation, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", inv.String())
	}

	wrapped := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	wrapped = zerr.With(wrapped, "command", inv.String())
	return zerr.With(wrapped, "exit_code", exitErr.ExitCode())
}

// resolveEnvironment applies overrides on top of the system environment and
// returns a sorted KEY=VALUE list.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

func envValue(env []string, key string) string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return strings.TrimPrefix(e, prefix)
		}
	}
	return ""
}
