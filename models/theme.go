package models

// Theme is the persisted colour scheme preference of the client.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme reports whether v names a known theme.
func ParseTheme(v string) (Theme, bool) {
	switch Theme(v) {
	case ThemeDark, ThemeLight:
		return Theme(v), true
	}
	return "", false
}

// Toggled returns the other theme. Anything but ThemeDark toggles to dark.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
