package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI views
var (
	// TitleStyle for view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 2, 0, 2)

	// PanelStyle for active panel borders
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			Padding(0, 2)

	// BreadcrumbStyle for the navigation path
	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2)

	// RowStyle for plain table rows
	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// SelectedRowStyle for the highlighted table row
	SelectedRowStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(BgSelection)

	// TimestampStyle for timestamp text
	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(2)

	// SpinnerStyle for loading spinners
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// HighlightStyle for filter-matched log content
	HighlightStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	// StatusHealthyStyle for healthy service status
	StatusHealthyStyle = lipgloss.NewStyle().
				Foreground(ColorHealthy).
				Bold(true)

	// StatusPendingStyle for transitioning service status
	StatusPendingStyle = lipgloss.NewStyle().
				Foreground(ColorPending).
				Bold(true)

	// StatusFailedStyle for failed service status
	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(ColorFailed).
				Bold(true)

	// StatusSleepingStyle for sleeping service status
	StatusSleepingStyle = lipgloss.NewStyle().
				Foreground(ColorSleeping)

	// ToastInfoStyle for informational toasts
	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ToastSuccessStyle for success toasts
	ToastSuccessStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	// ToastWarningStyle for warning toasts
	ToastWarningStyle = lipgloss.NewStyle().
			Foreground(ColorPending)

	// ToastErrorStyle for error toasts
	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)
)
