package store

import (
	"time"

	"github.com/vparshin/go-note-keeper/models"
)

const noteColumns = "note_id, user_id, title, content, archived, created_at, updated_at"

// ensureUserQuery builds the idempotent owner upsert: insert the row if the
// id is new, leave an existing row untouched. ON CONFLICT DO NOTHING is
// understood by both supported engines.
func (db *DB) ensureUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert("users").
		Columns("user_id", "email", "created_at").
		Values(user.UserID, user.Email, user.CreatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
}

// insertNoteQuery builds the INSERT for a fully populated note record.
func (db *DB) insertNoteQuery(note models.Note) (string, []any, error) {
	return db.builder.
		Insert("notes").
		Columns("note_id", "user_id", "title", "content", "archived", "created_at", "updated_at").
		Values(note.NoteID, note.OwnerID, note.Title, note.Content, note.Archived, note.CreatedAt, note.UpdatedAt).
		ToSql()
}

// selectActiveNotesQuery builds the listing query: every non-archived note
// of the given owner, most recently touched first. Updating any field of a
// note stamps updated_at and moves it to the front of the list. Ids are
// time-ordered uuid v7, so the note_id tiebreak keeps equal-timestamp rows
// newest-created first and the order stable across reloads.
func (db *DB) selectActiveNotesQuery(ownerID string) (string, []any, error) {
	return db.builder.
		Select(noteColumns).
		From("notes").
		Where("user_id = ? AND archived = ?", ownerID, false).
		OrderBy("updated_at DESC", "note_id DESC").
		ToSql()
}

// selectNoteQuery builds the single-note lookup scoped by owner.
func (db *DB) selectNoteQuery(ownerID, noteID string) (string, []any, error) {
	return db.builder.
		Select(noteColumns).
		From("notes").
		Where("note_id = ? AND user_id = ?", noteID, ownerID).
		ToSql()
}

// updateNoteQuery dynamically builds the UPDATE statement. Only fields
// present in upd produce SET clauses; updated_at is always touched. The
// WHERE clause is scoped by both note id and owner id so a foreign note is
// never modified.
func (db *DB) updateNoteQuery(ownerID, noteID string, upd models.NoteUpdate, now time.Time) (string, []any, error) {
	q := db.builder.
		Update("notes").
		Set("updated_at", now)

	if upd.Title != nil {
		q = q.Set("title", *upd.Title)
	}
	if upd.Content != nil {
		q = q.Set("content", *upd.Content)
	}
	if upd.Archived != nil {
		q = q.Set("archived", *upd.Archived)
	}

	return q.Where("note_id = ? AND user_id = ?", noteID, ownerID).ToSql()
}

// deleteNoteQuery builds the DELETE scoped by note id and owner id.
func (db *DB) deleteNoteQuery(ownerID, noteID string) (string, []any, error) {
	return db.builder.
		Delete("notes").
		Where("note_id = ? AND user_id = ?", noteID, ownerID).
		ToSql()
}
