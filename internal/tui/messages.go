package tui

import "github.com/vparshin/go-note-keeper/models"

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type createDoneMsg struct {
	err error
}

type updateDoneMsg struct {
	err error
}

type archiveDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}
