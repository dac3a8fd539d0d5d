package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhay963/Notes-Saver/internal/app"
	"github.com/abhay963/Notes-Saver/internal/service"
	"github.com/abhay963/Notes-Saver/models"
)

type screen int

const (
	screenList screen = iota
	screenView
	screenEditor
	screenBuildInfo
)

const listHotKeys = "/: search │ space: more/less │ enter: open │ n: new │ e: edit │ ctrl+d: delete │ c: copy │ R: reset │ t: theme │ v: about │ q: quit"

type mainLoopModel struct {
	ctx       context.Context
	notes     service.ClientNoteService
	prefs     service.PreferenceService
	theme     models.Theme
	buildInfo models.BuildInfo
	limit     int
	copyText  func(string) error

	items    []models.Note
	visible  []models.Note
	idx      int
	loading  bool
	expanded expandedSet

	search    textinput.Model
	searching bool

	screen screen
	viewID string

	form   noteFormModel
	saving bool

	confirm *confirmModel
	overlay *errorOverlayModel

	spinner spinner.Model
	status  string
	errMsg  string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, limit int) mainLoopModel {
	if limit <= 0 {
		limit = defaultPreviewWords
	}

	search := textinput.New()
	search.Placeholder = "Search here"
	search.Prompt = "/ "
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	theme, found := services.PreferenceService.Theme(ctx)
	if !found {
		theme = models.ThemeDark
	}

	return mainLoopModel{
		ctx:       ctx,
		notes:     services.NoteService,
		prefs:     services.PreferenceService,
		theme:     theme,
		buildInfo: services.AppInfoService.GetBuildInfo(ctx),
		limit:     limit,
		copyText:  clipboard.WriteAll,
		loading:   true,
		expanded:  expandedSet{},
		search:    search,
		spinner:   s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		m.loading = false
		m.items = msg.items
		m.refilter()
		return m, nil

	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgNoteCreated
		if msg.updated {
			m.status = app.MsgNoteUpdated
		}
		m.screen = screenList
		m.form = noteFormModel{}
		m.loading = true
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgNoteDeleted
		m.screen = screenList
		m.viewID = ""
		m.loading = true
		return m, m.cmdLoadNotes()

	case notesResetMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgAllNotesRemoved
		m.expanded = expandedSet{}
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadNotes()

	case themeSavedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.theme = msg.theme
		m.status = app.MsgThemeChanged + string(msg.theme)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgCopyFailed
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgCopied
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenEditor {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(keyMsg, keys.yes):
			onYes := m.confirm.onYes
			m.confirm = nil
			return m, onYes
		case key.Matches(keyMsg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenEditor:
		return m.updateEditor(keyMsg)
	case screenView:
		return m.updateView(keyMsg)
	case screenBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.info, keys.quit) {
			m.screen = screenList
		}
		return m, nil
	}

	if m.searching {
		return m.updateSearch(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(keyMsg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refilter()
		}
		m.status = ""
		m.errMsg = ""
	case key.Matches(keyMsg, keys.expand):
		if n, ok := m.current(); ok {
			m.expanded.toggle(n.ID)
		}
	case key.Matches(keyMsg, keys.enter):
		n, ok := m.current()
		if !ok {
			return m, nil
		}
		m.viewID = n.ID
		m.screen = screenView
	case key.Matches(keyMsg, keys.newItem):
		return m.startEditor(nil)
	case key.Matches(keyMsg, keys.edit):
		n, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.startEditor(&n)
	case key.Matches(keyMsg, keys.delete):
		n, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(n.ID)
	case key.Matches(keyMsg, keys.copy):
		n, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(n.Content)
	case key.Matches(keyMsg, keys.reset):
		if len(m.items) == 0 {
			return m, nil
		}
		m.confirm = &confirmModel{message: app.MsgConfirmReset, onYes: m.cmdReset()}
	case key.Matches(keyMsg, keys.info):
		m.screen = screenBuildInfo
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdSetTheme(m.theme.Toggled())
	}

	return m, nil
}

func (m mainLoopModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	m.refilter()
	return m, cmd
}

func (m mainLoopModel) updateView(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n, err := m.notes.Get(m.ctx, m.viewID)

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		m.viewID = ""
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case err != nil:
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		return m.startEditor(&n)
	case key.Matches(keyMsg, keys.delete):
		return m, m.cmdDelete(n.ID)
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy(n.Content)
	}

	return m, nil
}

func (m mainLoopModel) updateEditor(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		m.form = noteFormModel{}
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.form = m.form.switchFocus()
		return m, nil
	case key.Matches(keyMsg, keys.copyDraft):
		return m, m.cmdCopy(m.form.content.Value())
	case key.Matches(keyMsg, keys.save):
		if m.saving {
			return m, nil
		}
		if m.form.blank() {
			m.errMsg = app.MsgFillBothFields
			return m, nil
		}
		m.errMsg = ""
		m.saving = true
		return m, tea.Batch(m.cmdSubmit(m.form.editID, m.form.title.Value(), m.form.content.Value()), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) startEditor(n *models.Note) (tea.Model, tea.Cmd) {
	m.form = newNoteFormModel(n)
	m.screen = screenEditor
	m.errMsg = ""
	m.status = ""
	return m, textinput.Blink
}

// fail reports err: storage failures block with an overlay, the rest go to
// the status line.
func (m *mainLoopModel) fail(err error) {
	if isStorageFailure(err) {
		m.overlay = &errorOverlayModel{message: humanizeError(err)}
		m.errMsg = ""
		return
	}
	m.errMsg = humanizeError(err)
}

func (m *mainLoopModel) refilter() {
	m.visible = filterByTitle(m.items, m.search.Value())
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Note{}, false
	}
	return m.visible[m.idx], true
}

func (m mainLoopModel) View() string {
	applyTheme(m.theme)

	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	switch m.screen {
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case screenEditor:
		return m.viewEditor()
	case screenView:
		return m.viewNote()
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := statusLines(m.status, m.errMsg)

	if m.loading {
		out += m.spinner.View() + " Loading pastes...\n"
		return renderPage("ALL PASTES", strings.TrimRight(out, "\n"), listHotKeys)
	}

	searchLine := ""
	if m.searching || m.search.Value() != "" {
		searchLine = m.search.View()
	}

	switch {
	case len(m.items) == 0:
		if out != "" {
			out += "\n"
		}
		out += app.MsgNoNotes
	case len(m.visible) == 0:
		if out != "" {
			out += "\n"
		}
		out += searchLine + "\n\n" + app.MsgNoMatches
	default:
		if out != "" {
			out += "\n"
		}
		out += renderNoteList(m.visible, m.idx, m.expanded, m.limit, searchLine)
	}

	return renderPage("ALL PASTES", strings.TrimRight(out, "\n"), listHotKeys)
}

func (m mainLoopModel) viewNote() string {
	n, err := m.notes.Get(m.ctx, m.viewID)
	if err != nil {
		return renderPage("VIEW PASTE", app.MsgNoteNotFound, "esc: back")
	}

	title, body := renderNoteDetail(n)
	out := statusLines(m.status, m.errMsg)
	if out != "" {
		out += "\n"
	}
	out += body

	return renderPage(title, out, "e: edit │ c: copy │ ctrl+d: delete │ esc: back")
}

func (m mainLoopModel) viewEditor() string {
	title := "CREATE MY PASTE"
	action := "ctrl+s: create"
	if m.form.editing() {
		title = "UPDATE MY PASTE"
		action = "ctrl+s: update"
	}

	out := m.form.View() + "\n"
	if m.saving {
		out += "\n" + m.spinner.View() + " Saving...\n"
	}
	if s := statusLines(m.status, m.errMsg); s != "" {
		out += "\n" + s
	}

	return renderPage(title, strings.TrimRight(out, "\n"), action+" │ tab: next field │ ctrl+y: copy content │ esc: cancel")
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		return notesLoadedMsg{items: svc.List(ctx)}
	}
}

func (m mainLoopModel) cmdSubmit(editID, title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		note, err := svc.Submit(ctx, editID, title, content)
		return noteSavedMsg{note: note, updated: editID != "", err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		return noteDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	svc := m.notes

	return func() tea.Msg {
		return notesResetMsg{err: svc.Reset(ctx)}
	}
}

func (m mainLoopModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText

	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func (m mainLoopModel) cmdSetTheme(theme models.Theme) tea.Cmd {
	ctx := m.ctx
	prefs := m.prefs

	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: prefs.SetTheme(ctx, theme)}
	}
}
