// Package style provides the palette and status icons shared by every
// colored line imxbuild prints.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Blue   = lipgloss.Color("#3B82F6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Arrow   = "→"
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Bullet  = "•"
)
