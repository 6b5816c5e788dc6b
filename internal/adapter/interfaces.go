// Package adapter provides the transport layer for communicating with the
// note server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol: callers work with [models.Note]
// values and never see HTTP status codes or resty types.
package adapter

import (
	"context"

	"github.com/vparshin/go-note-keeper/models"
)

// ServerAdapter is the client-side view of the note API.
//
// Every request is attributed to the caller id the adapter was constructed
// with; there are no credentials. Implementations translate transport
// failures into the sentinel errors of this package so the service layer
// can match them with [errors.Is].
type ServerAdapter interface {
	// Liveness probes the server root and returns its plain-text banner.
	Liveness(ctx context.Context) (string, error)

	// ListNotes fetches every active note of the caller.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote stores a new note and returns the server-assigned record.
	CreateNote(ctx context.Context, newNote models.NewNote) (models.Note, error)

	// UpdateNote applies a partial update to the note with the given id.
	UpdateNote(ctx context.Context, noteID string, upd models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, noteID string) error
}
