package service

import (
	"context"
	"strings"
	"sync"

	"github.com/vparshin/go-note-keeper/internal/adapter"
	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/models"
)

type clientNotesService struct {
	serverAdapter adapter.ServerAdapter

	mu    sync.RWMutex
	notes []models.Note

	logger *logger.Logger
}

func NewClientNotesService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNotesService {
	return &clientNotesService{
		serverAdapter: serverAdapter,
		notes:         make([]models.Note, 0),
		logger:        logger,
	}
}

// Load implements [ClientNotesService]. The snapshot is replaced atomically:
// readers either see the previous complete listing or the new one, never a
// partial mix.
func (s *clientNotesService) Load(ctx context.Context) error {
	notes, err := s.serverAdapter.ListNotes(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.Load").Msg("error loading notes")
		return err
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	return nil
}

// Notes implements [ClientNotesService].
func (s *clientNotesService) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Note, len(s.notes))
	copy(snapshot, s.notes)
	return snapshot
}

// Create implements [ClientNotesService]. Blank drafts never reach the
// server: a note with nothing but whitespace in both fields is rejected with
// [ErrEmptyDraft].
func (s *clientNotesService) Create(ctx context.Context, title, content string) error {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return ErrEmptyDraft
	}

	newNote := models.NewNote{Title: &title, Content: &content}
	if _, err := s.serverAdapter.CreateNote(ctx, newNote); err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.Create").Msg("error creating note")
		return err
	}

	return s.Load(ctx)
}

// Update implements [ClientNotesService].
func (s *clientNotesService) Update(ctx context.Context, noteID string, upd models.NoteUpdate) error {
	if _, err := s.serverAdapter.UpdateNote(ctx, noteID, upd); err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.Update").Str("note_id", noteID).Msg("error updating note")
		return err
	}

	return s.Load(ctx)
}

// Archive implements [ClientNotesService]. Archiving is a partial update
// flipping only the archived flag.
func (s *clientNotesService) Archive(ctx context.Context, noteID string) error {
	archived := true
	return s.Update(ctx, noteID, models.NoteUpdate{Archived: &archived})
}

// Delete implements [ClientNotesService].
func (s *clientNotesService) Delete(ctx context.Context, noteID string) error {
	if err := s.serverAdapter.DeleteNote(ctx, noteID); err != nil {
		s.logger.Err(err).Str("func", "clientNotesService.Delete").Str("note_id", noteID).Msg("error deleting note")
		return err
	}

	return s.Load(ctx)
}
