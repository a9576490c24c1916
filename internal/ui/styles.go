package ui

import "github.com/charmbracelet/lipgloss"

// Erg-console palette
var (
	ColorLCD       = lipgloss.Color("#00FF41")
	ColorGreen     = lipgloss.Color("#00CC33")
	ColorMidGreen  = lipgloss.Color("#008F11")
	ColorDimGreen  = lipgloss.Color("#004A0A")
	ColorBorder    = lipgloss.Color("#00AA22")
	ColorBorderHot = lipgloss.Color("#00FF41")
	ColorWarning   = lipgloss.Color("#FFAA00")
	ColorPower     = lipgloss.Color("#FFCC00")
	ColorHeart     = lipgloss.Color("#FF3300")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorLCD).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorLCD).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorLCD).
				Bold(true)

	StyleStatusStopped = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderHot)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorLCD).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorLCD).
			Bold(true)

	StylePowerValue = lipgloss.NewStyle().
			Foreground(ColorPower).
			Bold(true)

	StyleHeartValue = lipgloss.NewStyle().
			Foreground(ColorHeart).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleGaugeFill = lipgloss.NewStyle().
			Foreground(ColorLCD)

	StyleGaugeEmpty = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
