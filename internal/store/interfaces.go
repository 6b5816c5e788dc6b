// Package store implements persistence for owners and notes on top of a
// relational engine. Two engines are supported: PostgreSQL (pgx driver) for
// a hosted deployment and SQLite (single file) for the local single-user
// case. The engine is selected by the DSN scheme; both run the same
// embedded migrations at connect time.
package store

import (
	"context"

	"github.com/vparshin/go-note-keeper/models"
)

// UserRepository persists owner records. The only operation the system
// needs is the lazy bootstrap upsert: guarantee the row exists, never touch
// an existing one.
type UserRepository interface {
	// EnsureUser creates the owner row for user.UserID if it does not
	// exist yet and leaves any existing row untouched. Idempotent.
	EnsureUser(ctx context.Context, user models.User) error
}

// NoteRepository is the note store adapter: create, list-active, partial
// update, and delete, all scoped by the owning user.
//
// Update and Delete return [ErrNoteNotFound] when no row matches both the
// note id and the owner id, so a foreign owner's note is indistinguishable
// from a missing one.
type NoteRepository interface {
	Create(ctx context.Context, ownerID, title, content string) (models.Note, error)
	ListActive(ctx context.Context, ownerID string) ([]models.Note, error)
	Update(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}

// ErrorClassificator reports whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error values.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
