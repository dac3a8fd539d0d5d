package tui

import (
	"github.com/abhay963/Notes-Saver/models"
)

type notesLoadedMsg struct {
	items []models.Note
}

type noteSavedMsg struct {
	note    models.Note
	updated bool
	err     error
}

type noteDeletedMsg struct {
	err error
}

type notesResetMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type themeSavedMsg struct {
	theme models.Theme
	err   error
}
