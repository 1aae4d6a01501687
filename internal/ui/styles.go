package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
)

// TitleStyle for the application banner.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// LabelStyle for form field labels.
var LabelStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Width(14)

// FocusedLabelStyle for the active form field label.
var FocusedLabelStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true).
	Width(14)

// ModeStyle for the selected investigation mode.
var ModeStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// EventStyle for progress feed lines.
var EventStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// FoundStyle for progress lines announcing a hit.
var FoundStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in the status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// SavedStyle for save confirmations.
var SavedStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Padding(0, 1)

// ScoreStyle renders the confidence score with a level color.
func ScoreStyle(score float64) lipgloss.Style {
	c := colorWarning
	if score >= 50 {
		c = colorSuccess
	} else if score < 20 {
		c = colorMuted
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
