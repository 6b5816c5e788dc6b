package service

import (
	"context"
	"time"

	"github.com/vparshin/go-note-keeper/models"
)

// ClientNotesService is the client-side synchronizer. It keeps an in-memory
// snapshot of the caller's active notes and reconciles it with the server by
// full reload: after every successful mutation the whole list is fetched
// again, so the snapshot never drifts from what the server would return.
type ClientNotesService interface {
	// Load fetches the caller's active notes and replaces the snapshot.
	// On error the previous snapshot is kept untouched.
	Load(ctx context.Context) error

	// Notes returns a copy of the current snapshot. The returned slice is
	// owned by the caller; mutating it does not affect the synchronizer.
	Notes() []models.Note

	// Create stores a new note on the server and reloads the snapshot.
	// A draft whose title and content are both blank is rejected with
	// [ErrEmptyDraft] without a server round-trip.
	Create(ctx context.Context, title, content string) error

	// Update applies a partial update to a note and reloads the snapshot.
	Update(ctx context.Context, noteID string, upd models.NoteUpdate) error

	// Archive marks a note as archived, which removes it from the active
	// listing, and reloads the snapshot.
	Archive(ctx context.Context, noteID string) error

	// Delete removes a note on the server and reloads the snapshot.
	Delete(ctx context.Context, noteID string) error
}

// ClientRefreshJob periodically reloads the note snapshot in the background
// so that changes made by other clients of the same caller become visible
// without a manual refresh.
type ClientRefreshJob interface {
	// Start launches the background reload loop. It stops any previously
	// running loop first. The loop exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
