package tui

import (
	"strings"

	"github.com/abhay963/Notes-Saver/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusTitle = iota
	focusContent
)

// noteFormModel is the create/edit form: a title input and a content area.
type noteFormModel struct {
	title   textinput.Model
	content textarea.Model
	focus   int
	editID  string
}

func newNoteFormModel(note *models.Note) noteFormModel {
	title := textinput.New()
	title.Placeholder = "Enter title here"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Enter content here"
	content.SetWidth(60)
	content.SetHeight(10)
	content.ShowLineNumbers = false

	m := noteFormModel{title: title, content: content}
	if note == nil {
		return m
	}

	m.editID = note.ID
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	return m
}

func (m noteFormModel) editing() bool {
	return m.editID != ""
}

// blank reports whether the title or the content is empty after trimming.
func (m noteFormModel) blank() bool {
	return strings.TrimSpace(m.title.Value()) == "" || strings.TrimSpace(m.content.Value()) == ""
}

func (m noteFormModel) switchFocus() noteFormModel {
	if m.focus == focusTitle {
		m.title.Blur()
		m.content.Focus()
		m.focus = focusContent
		return m
	}
	m.content.Blur()
	m.title.Focus()
	m.focus = focusTitle
	return m
}

func (m noteFormModel) update(msg tea.Msg) (noteFormModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m noteFormModel) View() string {
	out := "Title:\n"
	out += "[ " + m.title.View() + " ]\n\n"
	out += "Content:\n"
	out += m.content.View()
	return out
}
