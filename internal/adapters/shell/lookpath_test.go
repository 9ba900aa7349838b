package shell_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/intronix/buildroot-imx/internal/adapters/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
}

func TestLookPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeFile(t, filepath.Join(second, "make"), 0o755)
	writeFile(t, filepath.Join(first, "bc"), 0o644)
	require.NoError(t, os.Mkdir(filepath.Join(first, "cpio"), 0o755))

	path := first + string(os.PathListSeparator) + second

	t.Run("found in later directory", func(t *testing.T) {
		got, err := shell.LookPath("make", path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(second, "make"), got)
	})

	t.Run("not executable", func(t *testing.T) {
		_, err := shell.LookPath("bc", path)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("directory is not a program", func(t *testing.T) {
		_, err := shell.LookPath("cpio", path)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := shell.LookPath("make", "")
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("explicit path", func(t *testing.T) {
		explicit := filepath.Join(second, "make")
		got, err := shell.LookPath(explicit, "")
		require.NoError(t, err)
		assert.Equal(t, explicit, got)
	})
}
