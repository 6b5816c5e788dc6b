package service

import (
	"github.com/vparshin/go-note-keeper/internal/adapter"
	"github.com/vparshin/go-note-keeper/internal/logger"
)

type ClientServices struct {
	NotesService ClientNotesService
	RefreshJob   ClientRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	notesSvc := NewClientNotesService(serverAdapter, logger)

	return &ClientServices{
		NotesService: notesSvc,
		RefreshJob:   NewClientRefreshJob(notesSvc),
	}
}
