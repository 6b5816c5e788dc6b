package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/store"
	"github.com/vparshin/go-note-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn     func(ctx context.Context, ownerID, title, content string) (models.Note, error)
	listActiveFn func(ctx context.Context, ownerID string) ([]models.Note, error)
	updateFn     func(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error)
	deleteFn     func(ctx context.Context, ownerID, noteID string) error
}

func (m *mockNoteRepository) Create(ctx context.Context, ownerID, title, content string) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, title, content)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) ListActive(ctx context.Context, ownerID string) ([]models.Note, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockNoteRepository) Update(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, noteID, upd)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, noteID)
	}
	return nil
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestCreateNote_DefaultsAbsentFieldsToEmptyStrings(t *testing.T) {
	var gotTitle, gotContent string
	repo := &mockNoteRepository{
		createFn: func(ctx context.Context, ownerID, title, content string) (models.Note, error) {
			gotTitle, gotContent = title, content
			return models.Note{NoteID: "n1", OwnerID: ownerID, Title: title, Content: content}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	note, err := svc.CreateNote(context.Background(), "demo-user", models.NewNote{})
	require.NoError(t, err)

	assert.Empty(t, gotTitle)
	assert.Empty(t, gotContent)
	assert.Equal(t, "n1", note.NoteID)
}

func TestCreateNote_PassesProvidedFields(t *testing.T) {
	title, content := "groceries", "milk"
	repo := &mockNoteRepository{
		createFn: func(ctx context.Context, ownerID, gotTitle, gotContent string) (models.Note, error) {
			assert.Equal(t, "demo-user", ownerID)
			assert.Equal(t, title, gotTitle)
			assert.Equal(t, content, gotContent)
			return models.Note{Title: gotTitle, Content: gotContent}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	note, err := svc.CreateNote(context.Background(), "demo-user", models.NewNote{Title: &title, Content: &content})
	require.NoError(t, err)
	assert.Equal(t, title, note.Title)
}

func TestCreateNote_EmptyOwner(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	_, err := svc.CreateNote(context.Background(), "", models.NewNote{})
	assert.ErrorIs(t, err, ErrEmptyCallerID)
}

// ─────────────────────────────────────────────
// ListNotes
// ─────────────────────────────────────────────

func TestListNotes_DelegatesToRepository(t *testing.T) {
	want := []models.Note{{NoteID: "n1"}, {NoteID: "n2"}}
	repo := &mockNoteRepository{
		listActiveFn: func(ctx context.Context, ownerID string) ([]models.Note, error) {
			assert.Equal(t, "demo-user", ownerID)
			return want, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	notes, err := svc.ListNotes(context.Background(), "demo-user")
	require.NoError(t, err)
	assert.Equal(t, want, notes)
}

func TestListNotes_RepositoryError(t *testing.T) {
	wantErr := errors.New("boom")
	repo := &mockNoteRepository{
		listActiveFn: func(ctx context.Context, ownerID string) ([]models.Note, error) {
			return nil, wantErr
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.ListNotes(context.Background(), "demo-user")
	assert.ErrorIs(t, err, wantErr)
}

// ─────────────────────────────────────────────
// UpdateNote / DeleteNote
// ─────────────────────────────────────────────

func TestUpdateNote_NotFoundPassesThrough(t *testing.T) {
	repo := &mockNoteRepository{
		updateFn: func(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	title := "x"
	_, err := svc.UpdateNote(context.Background(), "demo-user", "missing", models.NoteUpdate{Title: &title})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestUpdateNote_EmptyNoteID(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	_, err := svc.UpdateNote(context.Background(), "demo-user", "", models.NoteUpdate{})
	assert.ErrorIs(t, err, ErrEmptyNoteID)
}

func TestDeleteNote_Success(t *testing.T) {
	var deleted string
	repo := &mockNoteRepository{
		deleteFn: func(ctx context.Context, ownerID, noteID string) error {
			deleted = noteID
			return nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	require.NoError(t, svc.DeleteNote(context.Background(), "demo-user", "n1"))
	assert.Equal(t, "n1", deleted)
}

func TestDeleteNote_EmptyNoteID(t *testing.T) {
	svc := NewNoteService(&mockNoteRepository{}, logger.Nop())

	err := svc.DeleteNote(context.Background(), "demo-user", "")
	assert.ErrorIs(t, err, ErrEmptyNoteID)
}
