// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/modpad/modpad/internal/config"
)

// Palette. Each color has a light-background and a dark-background variant;
// lipgloss picks one from the detected (or configured) terminal background.
var (
	colorTitle   = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	colorOK      = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorKey     = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	// TitleStyle renders section headers in inspect and config show.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)

	// SubtitleStyle renders labels and secondary text.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	SuccessStyle = lipgloss.NewStyle().Foreground(colorOK)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// KeyStyle renders paths, format names and config keys.
	KeyStyle = lipgloss.NewStyle().Foreground(colorKey)
)

// applyColorScheme pins the palette variant for an explicit dark or light
// scheme. Auto keeps lipgloss's terminal detection.
func applyColorScheme(scheme config.ColorScheme) {
	switch scheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
