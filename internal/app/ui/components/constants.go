package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for animations
	UITickInterval = 100 * time.Millisecond

	// Derived FPS for animations (ticks per second)
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsInterval is how often the footer self-stats refresh
	StatsInterval = 2 * time.Second

	// ToastLifetime is how long a settled toast stays visible
	ToastLifetime = 5 * time.Second
)

// Generic layout constants
const (
	PanelHeightPadding = 6
	MinPanelHeight     = 8

	DefaultViewportWidth = 80
)

// Logs view constants
const (
	LogTimeFormat      = "15:04:05"
	LogMessageMinWidth = 20
)
