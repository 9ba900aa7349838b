package domain

import (
	"strconv"
	"strings"
)

// Invocation describes a single call of an external program.
type Invocation struct {
	// Program is the executable name, resolved against the PATH in Env.
	Program string
	// Args are passed to the program as-is.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds overrides applied on top of the parent environment.
	Env map[string]string
	// Interactive invocations inherit the terminal and are never captured.
	Interactive bool
}

// NewMakeInvocation builds a make call for the given target.
// An empty target runs the default goal. A positive jobs value adds -j<jobs>.
func NewMakeInvocation(s *Settings, target string, jobs int) *Invocation {
	var args []string
	if jobs > 0 {
		args = append(args, "-j"+strconv.Itoa(jobs))
	}
	if target != "" {
		args = append(args, target)
	}
	return &Invocation{
		Program: s.Make,
		Args:    args,
		Dir:     s.WorkDir,
		Env:     map[string]string{"PATH": s.Path},
	}
}

// String renders the invocation the way it would be typed in a shell.
func (i *Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Program
	}
	return i.Program + " " + strings.Join(i.Args, " ")
}
