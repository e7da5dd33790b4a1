// Package styles provides shared lipgloss styles for rpc's terminal output.
//
// Colors come from the active [Theme], selected from config with [Init].
// Styles always render ANSI sequences; the output and log packages
// downsample them to what the destination supports.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	// Primary is the main accent color (headings, executing notices)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for selected items
	Accent color.Color = DefaultTheme.Accent

	// Success is used for checkmarks and positive outcomes
	Success color.Color = DefaultTheme.Success

	// Error is used for failures
	Error color.Color = DefaultTheme.Error

	// Warning is used for non-fatal problems
	Warning color.Color = DefaultTheme.Warning

	// Muted is used for secondary text such as script commands
	Muted color.Color = DefaultTheme.Muted

	// Normal is the standard text color
	Normal color.Color = DefaultTheme.Normal
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// HeadingStyle is bold primary text for section titles
	HeadingStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)
)
