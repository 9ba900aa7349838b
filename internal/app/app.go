// Package app implements the application layer for imxbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	checker      ports.HostChecker
	buildLog     ports.BuildLog
	images       ports.ImageLister
	prompter     ports.Prompter
	tracer       ports.Tracer

	cwd      string
	stdout   io.Writer
	stderr   io.Writer
	settings *domain.Settings
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	checker ports.HostChecker,
	buildLog ports.BuildLog,
	images ports.ImageLister,
	prompter ports.Prompter,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		checker:      checker,
		buildLog:     buildLog,
		images:       images,
		prompter:     prompter,
		tracer:       tracer,
		cwd:          ".",
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput sets the console streams make output is written to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkDir sets the directory the configuration is loaded from.
func (a *App) WithWorkDir(dir string) *App {
	a.cwd = dir
	a.settings = nil
	return a
}

// Settings returns the effective configuration. If the configuration file
// cannot be loaded the built-in defaults are returned and a warning is logged.
func (a *App) Settings() *domain.Settings {
	s, err := a.load()
	if err != nil {
		a.logger.Warn("using default settings: " + err.Error())
		return domain.DefaultSettings(a.cwd)
	}
	return s
}

// Shutdown releases the tracer.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}

func (a *App) load() (*domain.Settings, error) {
	if a.settings != nil {
		return a.settings, nil
	}
	s, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	a.settings = s
	return s, nil
}

// run executes one invocation inside a span. Output goes to out, or to the
// console when out is nil.
func (a *App) run(ctx context.Context, inv *domain.Invocation, out io.Writer) error {
	ctx, span := a.tracer.Start(ctx, inv.String())
	defer span.End()

	span.SetAttribute("program", inv.Program)
	span.SetAttribute("args", inv.Args)
	span.SetAttribute("interactive", inv.Interactive)

	stdout, stderr := a.stdout, a.stderr
	if out != nil {
		stdout, stderr = out, out
	}

	if err := a.executor.Execute(ctx, inv, stdout, stderr); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// target runs make <cmd.Target()> on the console without capture.
func (a *App) target(ctx context.Context, cmd domain.Command) error {
	s, err := a.load()
	if err != nil {
		return err
	}

	inv := domain.NewMakeInvocation(s, cmd.Target(), 0)
	inv.Interactive = cmd.Interactive()
	return a.run(ctx, inv, nil)
}

// checkHostTools fails with a MissingToolsError naming every absent tool.
func (a *App) checkHostTools(s *domain.Settings) error {
	missing := a.checker.Missing(s.HostTools, s.Path)
	if len(missing) == 0 {
		return nil
	}
	return &domain.MissingToolsError{Tools: missing}
}

// failed reports a failing build step with a pointer to the log file and
// classifies the error so that it is not reported a second time.
func (a *App) failed(s *domain.Settings, err error) error {
	a.logger.Error(zerr.Wrap(err, fmt.Sprintf("build failed, see %s for details", s.LogFile)))
	return errors.Join(domain.ErrBuildExecutionFailed, err)
}

// captured runs each invocation in order, teeing output into log.
func (a *App) captured(ctx context.Context, s *domain.Settings, log io.Writer, invs ...*domain.Invocation) error {
	out := io.MultiWriter(a.stdout, log)
	for _, inv := range invs {
		if err := a.run(ctx, inv, out); err != nil {
			return a.failed(s, err)
		}
	}
	return nil
}

// build runs the default make goal with the log truncated, then lists images.
// Host tools are expected to have been checked already.
func (a *App) build(ctx context.Context, s *domain.Settings) error {
	log, err := a.buildLog.Create(s.Resolve(s.LogFile))
	if err != nil {
		return err
	}
	defer log.Close() //nolint:errcheck // Best effort close in defer

	jobs := s.ParallelJobs()
	a.logger.Info(fmt.Sprintf("building %s images with %d parallel jobs", s.Board, jobs))

	if err := a.captured(ctx, s, log, domain.NewMakeInvocation(s, "", jobs)); err != nil {
		return err
	}

	a.logger.Success("build completed")
	return a.listImages(s)
}

// Build verifies host tools and runs a full parallel build.
func (a *App) Build(ctx context.Context) error {
	s, err := a.load()
	if err != nil {
		return err
	}
	if err := a.checkHostTools(s); err != nil {
		return err
	}
	return a.build(ctx, s)
}

// Rebuild verifies host tools, cleans the tree and runs a full build.
func (a *App) Rebuild(ctx context.Context) error {
	s, err := a.load()
	if err != nil {
		return err
	}
	if err := a.checkHostTools(s); err != nil {
		return err
	}
	if err := a.target(ctx, domain.CommandClean); err != nil {
		return err
	}
	return a.build(ctx, s)
}

// Clean removes build output. Downloaded sources are kept.
func (a *App) Clean(ctx context.Context) error {
	return a.target(ctx, domain.CommandClean)
}

// Distclean asks for confirmation and then removes build output, downloads
// and configuration. A declined prompt is not an error.
func (a *App) Distclean(ctx context.Context) error {
	if _, err := a.load(); err != nil {
		return err
	}

	ok, err := a.prompter.Confirm("This removes all build output, downloaded sources and the configuration. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		a.logger.Info("distclean aborted")
		return nil
	}
	return a.target(ctx, domain.CommandDistclean)
}

// Menuconfig opens the Buildroot configuration menu.
func (a *App) Menuconfig(ctx context.Context) error {
	return a.target(ctx, domain.CommandMenuconfig)
}

// LinuxMenuconfig opens the kernel configuration menu.
func (a *App) LinuxMenuconfig(ctx context.Context) error {
	return a.target(ctx, domain.CommandLinuxMenuconfig)
}

// Savedefconfig writes the current configuration back as a defconfig.
func (a *App) Savedefconfig(ctx context.Context) error {
	return a.target(ctx, domain.CommandSavedefconfig)
}

// LinuxRebuild rebuilds the kernel and then the images.
func (a *App) LinuxRebuild(ctx context.Context) error {
	return a.componentRebuild(ctx, domain.CommandLinuxRebuild)
}

// UbootRebuild rebuilds the bootloader and then the images.
func (a *App) UbootRebuild(ctx context.Context) error {
	return a.componentRebuild(ctx, domain.CommandUbootRebuild)
}

func (a *App) componentRebuild(ctx context.Context, cmd domain.Command) error {
	s, err := a.load()
	if err != nil {
		return err
	}
	if err := a.checkHostTools(s); err != nil {
		return err
	}

	log, err := a.buildLog.Append(s.Resolve(s.LogFile))
	if err != nil {
		return err
	}
	defer log.Close() //nolint:errcheck // Best effort close in defer

	jobs := s.ParallelJobs()
	a.logger.Info(fmt.Sprintf("rebuilding %s and images with %d parallel jobs", cmd, jobs))

	if err := a.captured(ctx, s, log,
		domain.NewMakeInvocation(s, cmd.Target(), 0),
		domain.NewMakeInvocation(s, "", jobs),
	); err != nil {
		return err
	}

	a.logger.Success(cmd.String() + " completed")
	return a.listImages(s)
}
