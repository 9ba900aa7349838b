package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional settings file in the working directory.
	ConfigFileName = "imxbuild.yaml"

	// LogFileName is the name of the build log written next to the Buildroot tree.
	LogFileName = "build.log"

	// OutputDirName is the Buildroot output directory.
	OutputDirName = "output"

	// ImagesDirName is the directory inside OutputDirName holding flashable images.
	ImagesDirName = "images"

	// DefaultMake is the build driver invoked for every target.
	DefaultMake = "make"

	// DefaultPath is the PATH handed to make. Buildroot refuses to build when
	// PATH contains the current directory or spaces, so the caller's PATH is
	// never inherited.
	DefaultPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

	// DefaultBoard is the board name shown in help output.
	DefaultBoard = "NXP i.MX"

	// DefaultLoginUser is the login user of the generated root filesystem.
	DefaultLoginUser = "root"

	// DefaultLoginPassword is the login password of the generated root filesystem.
	DefaultLoginPassword = "root"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultImagesPath returns the default directory for build artifacts.
// It joins output and images.
func DefaultImagesPath() string {
	return filepath.Join(OutputDirName, ImagesDirName)
}

// DefaultHostTools returns the host executables Buildroot needs before it can start.
func DefaultHostTools() []string {
	return []string{
		"make",
		"gcc",
		"g++",
		"patch",
		"perl",
		"python3",
		"rsync",
		"bc",
		"cpio",
		"unzip",
		"wget",
		"file",
		"tar",
		"gzip",
		"bzip2",
		"sed",
		"which",
	}
}
