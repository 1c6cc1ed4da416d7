package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("75")  // Blue for the advisor voice
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorText      = lipgloss.Color("252") // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// Roadmap Box - frames the final phased roadmap
	StyleRoadmapBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	// Semantic Prefix Styles
	StylePrefixAdvisor  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)   // Advisor questions
	StylePrefixUser     = lipgloss.NewStyle().Foreground(ColorSuccess)              // User prompt
	StylePrefixThinking = lipgloss.NewStyle().Foreground(ColorSecondary)            // Stage progress
	StylePrefixDone     = lipgloss.NewStyle().Foreground(ColorSuccess)              // Stage done
	StylePrefixWarn     = lipgloss.NewStyle().Foreground(ColorWarning)              // Warnings
)
