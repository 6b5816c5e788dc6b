package service

import (
	"context"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/store"
	"github.com/vparshin/go-note-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote stores a new note for the owner. Absent title or content in the
// request defaults to the empty string, so a completely empty body still
// produces a valid note.
func (s *noteService) CreateNote(ctx context.Context, ownerID string, newNote models.NewNote) (models.Note, error) {
	if ownerID == "" {
		return models.Note{}, ErrEmptyCallerID
	}

	var title, content string
	if newNote.Title != nil {
		title = *newNote.Title
	}
	if newNote.Content != nil {
		content = *newNote.Content
	}

	return s.noteRepository.Create(ctx, ownerID, title, content)
}

func (s *noteService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	if ownerID == "" {
		return nil, ErrEmptyCallerID
	}

	return s.noteRepository.ListActive(ctx, ownerID)
}

func (s *noteService) UpdateNote(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
	if ownerID == "" {
		return models.Note{}, ErrEmptyCallerID
	}
	if noteID == "" {
		return models.Note{}, ErrEmptyNoteID
	}

	return s.noteRepository.Update(ctx, ownerID, noteID, upd)
}

func (s *noteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if ownerID == "" {
		return ErrEmptyCallerID
	}
	if noteID == "" {
		return ErrEmptyNoteID
	}

	return s.noteRepository.Delete(ctx, ownerID, noteID)
}
