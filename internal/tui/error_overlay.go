package tui

// errorOverlayModel blocks the screen after a failed write until the user
// acknowledges it; the last change was not saved.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Not saved") + "\n\n" +
			m.message + "\n\n" +
			helpStyle.Render("enter / esc: close"),
	)
}
