package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intronix/buildroot-imx/internal/adapters/config"
	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600)
	require.NoError(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	s, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(dir), s)
}

func TestLoad_Overrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	writeConfig(t, dir, `
board: i.MX8M Mini EVK
make: gmake
path: /opt/tools/bin:/usr/bin:/bin
jobs: 4
logFile: logs/build.log
imagesDir: out/images
hostTools: [gmake, gcc]
login:
  user: admin
  password: secret
`)

	s, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "i.MX8M Mini EVK", s.Board)
	assert.Equal(t, dir, s.WorkDir)
	assert.Equal(t, "gmake", s.Make)
	assert.Equal(t, "/opt/tools/bin:/usr/bin:/bin", s.Path)
	assert.Equal(t, 4, s.Jobs)
	assert.Equal(t, 4, s.ParallelJobs())
	assert.Equal(t, "logs/build.log", s.LogFile)
	assert.Equal(t, "out/images", s.ImagesDir)
	assert.Equal(t, []string{"gmake", "gcc"}, s.HostTools)
	assert.Equal(t, domain.Credentials{User: "admin", Password: "secret"}, s.Login)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	writeConfig(t, dir, "jobs: 2\n")

	s, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Jobs)
	assert.Equal(t, domain.DefaultMake, s.Make)
	assert.Equal(t, domain.DefaultPath, s.Path)
	assert.Equal(t, domain.DefaultHostTools(), s.HostTools)
}

func TestLoad_PartialLoginKeepsDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Credentials
	}{
		{
			name:    "user only",
			content: "login: {user: admin}\n",
			want:    domain.Credentials{User: "admin", Password: domain.DefaultLoginPassword},
		},
		{
			name:    "password only",
			content: "login:\n  password: imx\n",
			want:    domain.Credentials{User: domain.DefaultLoginUser, Password: "imx"},
		},
		{
			name:    "empty block",
			content: "login: {}\n",
			want:    domain.Credentials{User: domain.DefaultLoginUser, Password: domain.DefaultLoginPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))
			dir := t.TempDir()

			writeConfig(t, dir, tt.content)

			s, err := loader.Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Login)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	writeConfig(t, dir, "")

	s, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(dir), s)
}

func TestLoad_EmptyHostToolsWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := config.NewLoader(mockLogger)
	dir := t.TempDir()

	writeConfig(t, dir, "hostTools: []\n")

	s, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.HostTools)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "unknown key",
			content:     "jobz: 4\n",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "malformed yaml",
			content:     "jobs: [\n",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "negative jobs",
			content:     "jobs: -1\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
		{
			name:        "path with spaces",
			content:     "path: /usr/bin:/my tools/bin\n",
			errContains: domain.ErrInvalidConfig.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			s, err := loader.Load(dir)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
			assert.Nil(t, s)
		})
	}
}

func TestLoad_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	dir := t.TempDir()

	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.ConfigFileName), 0o750))

	_, err := loader.Load(dir)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
