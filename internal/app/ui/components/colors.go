package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	ColorPrimary = lipgloss.Color("#10B981") // Emerald - primary/focus color
	ColorMuted   = lipgloss.Color("7")       // Light gray - muted elements
	ColorBorder  = lipgloss.Color("8")       // Gray - borders and help text

	BgSelection = lipgloss.Color("235") // Dark gray - selected background

	// Status colors - service states
	ColorHealthy  = lipgloss.Color("10") // Green - healthy/running
	ColorPending  = lipgloss.Color("11") // Yellow - deploying/transition
	ColorFailed   = lipgloss.Color("9")  // Red - failed/unhealthy
	ColorSleeping = lipgloss.Color("8")  // Gray - sleeping/stopped
)

// LevelColors maps log levels to their display colors
var LevelColors = map[string]lipgloss.Color{
	"INFO":  ColorMuted,
	"ERROR": ColorFailed,
}

// HighlightColor is the adaptive color for filter-matched log content
var HighlightColor = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
