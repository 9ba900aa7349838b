package domain

import (
	"path/filepath"
	"runtime"
)

// Credentials are the login credentials baked into the root filesystem.
type Credentials struct {
	User     string
	Password string
}

// Settings is the effective configuration for one run.
type Settings struct {
	// Board is a human readable board name.
	Board string
	// WorkDir is the Buildroot tree make is run in.
	WorkDir string
	// Make is the build driver executable.
	Make string
	// Path replaces PATH for every invocation and for the host tool check.
	Path string
	// Jobs is the make parallelism. Zero means one job per logical CPU.
	Jobs int
	// LogFile receives captured build output.
	LogFile string
	// ImagesDir is where finished images are listed from.
	ImagesDir string
	// HostTools must all resolve in Path before a build starts.
	HostTools []string
	// Login is printed in help output.
	Login Credentials
}

// DefaultSettings returns the built-in configuration rooted at workDir.
func DefaultSettings(workDir string) *Settings {
	return &Settings{
		Board:     DefaultBoard,
		WorkDir:   workDir,
		Make:      DefaultMake,
		Path:      DefaultPath,
		LogFile:   LogFileName,
		ImagesDir: DefaultImagesPath(),
		HostTools: DefaultHostTools(),
		Login: Credentials{
			User:     DefaultLoginUser,
			Password: DefaultLoginPassword,
		},
	}
}

// ParallelJobs returns the -j value for make.
func (s *Settings) ParallelJobs() int {
	if s.Jobs > 0 {
		return s.Jobs
	}
	return runtime.NumCPU()
}

// Resolve returns p unchanged when absolute, otherwise joined onto WorkDir.
func (s *Settings) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.WorkDir, p)
}
