// Package hostcheck verifies that the host tools Buildroot needs are installed.
package hostcheck

import "github.com/intronix/buildroot-imx/internal/adapters/shell"

// Checker implements ports.HostChecker by searching a PATH string.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Missing returns every tool that is not an executable file in path.
// Order follows tools and each name is reported once.
func (c *Checker) Missing(tools []string, path string) []string {
	var missing []string
	seen := make(map[string]struct{}, len(tools))

	for _, tool := range tools {
		if _, dup := seen[tool]; dup {
			continue
		}
		seen[tool] = struct{}{}

		if _, err := shell.LookPath(tool, path); err != nil {
			missing = append(missing, tool)
		}
	}

	return missing
}
