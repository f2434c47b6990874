package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Chunks whose speaker has no palette color use the dim slate.
	colorDim = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}

	colorIndex = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
)
