package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks a yes/no question before a destructive action. onYes runs
// when the user accepts.
type confirmModel struct {
	message string
	onYes   tea.Cmd
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(
		titleStyle.Render("Confirm") + "\n\n" +
			m.message + "\n\n" +
			helpStyle.Render("y: yes │ n / esc: no"),
	)
}
