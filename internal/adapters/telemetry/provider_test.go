package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/intronix/buildroot-imx/internal/adapters/telemetry"
	"github.com/intronix/buildroot-imx/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_ReportsSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(mockLogger))

	gomock.InOrder(
		mockLogger.EXPECT().Info("running make savedefconfig"),
		mockLogger.EXPECT().Success(gomock.Any()).Do(func(msg string) {
			assert.True(t, strings.HasPrefix(msg, "make savedefconfig finished in "), msg)
		}),
	)

	_, span := tracer.Start(context.Background(), "make savedefconfig")
	span.SetAttribute("target", "savedefconfig")
	span.SetAttribute("jobs", 8)
	span.SetAttribute("interactive", false)
	span.SetAttribute("args", []string{"savedefconfig"})
	span.SetAttribute("other", struct{}{})
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelTracer_RecordErrorMarksFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(mockLogger))

	mockLogger.EXPECT().Info("running make -j4")
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.True(t, strings.HasPrefix(msg, "make -j4 failed after "), msg)
	})

	_, span := tracer.Start(context.Background(), "make -j4")
	span.RecordError(nil)
	span.RecordError(errors.New("exit status 2"))
	span.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelTracer_WithoutProcessors(t *testing.T) {
	tracer := telemetry.NewOTelTracer("test")

	ctx, span := tracer.Start(context.Background(), "make")
	assert.NotNil(t, ctx)
	span.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
