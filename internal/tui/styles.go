package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/abhay963/Notes-Saver/models"
)

var (
	titleStyle      lipgloss.Style
	helpStyle       lipgloss.Style
	errorStyle      lipgloss.Style
	statusStyle     lipgloss.Style
	cursorStyle     lipgloss.Style
	overlayBoxStyle lipgloss.Style
)

func init() {
	applyTheme(models.ThemeDark)
}

// applyTheme switches the package styles to the palette of theme.
func applyTheme(theme models.Theme) {
	accent, errColor, okColor, faint, border := "212", "9", "10", "245", "63"
	if theme == models.ThemeLight {
		accent, errColor, okColor, faint, border = "90", "1", "28", "240", "25"
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(faint))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(errColor))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(okColor))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	overlayBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2)
}

// detectTheme picks the theme matching the terminal background.
var detectTheme = func() models.Theme {
	if lipgloss.HasDarkBackground() {
		return models.ThemeDark
	}
	return models.ThemeLight
}
