// Package config provides the settings loader for imxbuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the default settings for cwd, overridden by cwd/imxbuild.yaml
// when that file exists.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings(cwd)

	configPath := filepath.Join(cwd, domain.ConfigFileName)
	data, err := os.ReadFile(configPath) //nolint:gosec // fixed file name inside the working directory
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	if err := l.apply(settings, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return settings, nil
}

func (l *Loader) apply(s *domain.Settings, f *File) error {
	if f.Jobs < 0 {
		return zerr.With(domain.ErrInvalidConfig, "jobs", f.Jobs)
	}
	if strings.ContainsAny(f.Path, " \t") {
		return zerr.With(domain.ErrInvalidConfig, "path", f.Path)
	}

	setString(&s.Board, f.Board)
	setString(&s.Make, f.Make)
	setString(&s.Path, f.Path)
	setString(&s.LogFile, f.LogFile)
	setString(&s.ImagesDir, f.ImagesDir)
	if f.Jobs > 0 {
		s.Jobs = f.Jobs
	}

	if f.HostTools != nil {
		s.HostTools = append([]string(nil), (*f.HostTools)...)
		if len(s.HostTools) == 0 && l.Logger != nil {
			l.Logger.Warn("hostTools is empty in " + domain.ConfigFileName + ", host tool check disabled")
		}
	}

	if f.Login != nil {
		setString(&s.Login.User, f.Login.User)
		setString(&s.Login.Password, f.Login.Password)
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
