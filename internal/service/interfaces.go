package service

import (
	"context"

	"github.com/vparshin/go-note-keeper/models"
)

type NoteService interface {
	CreateNote(ctx context.Context, ownerID string, newNote models.NewNote) (models.Note, error)
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
}

// IdentityService performs the lazy owner bootstrap: every request carries a
// caller id, and the owner row is guaranteed to exist before any note
// operation runs against it.
type IdentityService interface {
	EnsureOwner(ctx context.Context, callerID string) error
}
