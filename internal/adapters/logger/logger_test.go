package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/intronix/buildroot-imx/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing plain text into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("building images with 8 parallel jobs") },
			goldenName: "info_basic",
		},
		{
			name:       "success",
			log:        func(l *logger.Logger) { l.Success("build completed") },
			goldenName: "success_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("no images found in output/images") },
			goldenName: "warn_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: field jobz not found"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Success("build completed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "SUCCESS", record["level"])
	assert.Equal(t, "build completed", record["msg"])
}

func TestLogger_JSONError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("make exited with status 2"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "make exited with status 2", record["error"])
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("exit status 2"),
			wantMessages: []string{"exit status 2"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("exit status 2"), "command failed"), "build failed"),
			wantMessages: []string{"build failed", "command failed", "exit status 2"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name: "metadata does not add links",
			err: zerr.With(
				zerr.With(zerr.New("command failed"), "command", "make -j8"),
				"exit_code", 2,
			),
			wantMessages: []string{"command failed"},
			wantMetadata: []map[string]any{{"command": "make -j8", "exit_code": 2}},
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			require.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "missing required host tools: bc rsync"}},
			want:    "Error: missing required host tools: bc rsync",
		},
		{
			name: "cause with multiline message",
			entries: []logger.ErrorEntry{
				{Message: "build failed, see build.log"},
				{Message: "command failed\nexit code 2"},
			},
			want: "Error: build failed, see build.log\n" +
				"\n" +
				"  Caused by:\n" +
				"    → command failed\n" +
				"      exit code 2",
		},
		{
			name: "metadata on main error",
			entries: []logger.ErrorEntry{
				{Message: "failed to parse config file", Metadata: map[string]any{"path": "imxbuild.yaml"}},
			},
			want: "Error: failed to parse config file\n       path: imxbuild.yaml",
		},
		{
			name: "metadata on cause sorted by key",
			entries: []logger.ErrorEntry{
				{Message: "build failed, see build.log for details"},
				{Message: "command failed", Metadata: map[string]any{"exit_code": 2, "command": "make -j8"}},
			},
			want: "Error: build failed, see build.log for details\n" +
				"\n" +
				"  Caused by:\n" +
				"    → command failed\n" +
				"      command: make -j8\n" +
				"      exit_code: 2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
