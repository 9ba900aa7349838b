package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/intronix/buildroot-imx/internal/app"
	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports"
	"github.com/intronix/buildroot-imx/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	checker  *mocks.MockHostChecker
	buildLog *mocks.MockBuildLog
	tracer   *mocks.MockTracer
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		checker:  mocks.NewMockHostChecker(ctrl),
		buildLog: mocks.NewMockBuildLog(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
	}
	f.tracer.EXPECT().Shutdown(gomock.Any()).Return(nil).AnyTimes()

	f.app = app.New(
		f.loader,
		f.executor,
		f.logger,
		f.checker,
		f.buildLog,
		mocks.NewMockImageLister(ctrl),
		mocks.NewMockPrompter(ctrl),
		f.tracer,
	).WithOutput(io.Discard, io.Discard)
	return f
}

func (f *fixture) provider(cleaned *bool) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: f.app, Logger: f.logger}, func() {
			if cleaned != nil {
				*cleaned = true
			}
			_ = f.app.Shutdown(context.Background())
		}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)
	cleaned := false

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), f.provider(&cleaned))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "imxbuild version")
	assert.True(t, cleaned)
}

func TestRun_Help(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultSettings("."), nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--help"}, stdout, new(bytes.Buffer), f.provider(nil))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "Default login:")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultSettings("."), nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrUsage)
		assert.ErrorContains(t, err, "unknown command")
	})

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"flash"}, io.Discard, stderr, f.provider(nil))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Usage: imxbuild [command]")
}

func TestRun_MissingHostTools(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultSettings("."), nil)
	f.checker.EXPECT().Missing(gomock.Any(), gomock.Any()).Return([]string{"bc"})
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrMissingHostTools)
		assert.ErrorContains(t, err, "bc")
	})

	exitCode := run(context.Background(), nil, io.Discard, io.Discard, f.provider(nil))
	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailure verifies that a failing build is not reported twice.
func TestRun_BuildFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultSettings(t.TempDir()), nil)
	f.checker.EXPECT().Missing(gomock.Any(), gomock.Any()).Return(nil)
	f.buildLog.EXPECT().Create(gomock.Any()).Return(nopCloser{io.Discard}, nil)

	span := mocks.NewMockSpan(gomock.NewController(t))
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any())
	span.EXPECT().End()
	f.tracer.EXPECT().Start(gomock.Any(), "make -j2").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("exit status 2"))
	f.logger.EXPECT().Info(gomock.Any())
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), nil, io.Discard, io.Discard, f.provider(nil), func(a *app.App) {
		a.Settings().Jobs = 2
	})
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(domain.DefaultSettings("."), nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *domain.Invocation, _, _ io.Writer) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return errors.New("timeout in mock")
			}
		})

	span := mocks.NewMockSpan(gomock.NewController(t))
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any())
	span.EXPECT().End()
	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"clean"}, io.Discard, io.Discard, f.provider(nil))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
