package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/utils"
	"github.com/vparshin/go-note-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository]. It
// executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (owner_id, note_id).
type noteRepository struct {
	*DB
	logger *logger.Logger
	uuid   *utils.UUIDGenerator
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
		uuid:   utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

// Create inserts a new note for the given owner and returns the stored
// record. The id is generated server-side; absent title or content is
// stored as the empty string, never NULL.
func (n *noteRepository) Create(ctx context.Context, ownerID, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := n.now().UTC()
	note := models.Note{
		NoteID:    n.uuid.Generate(),
		Title:     title,
		Content:   content,
		Archived:  false,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args, err := n.insertNoteQuery(note)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("owner_id", ownerID).
			Msg("failed to build insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := n.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Create").
			Str("owner_id", ownerID).
			Str("note_id", note.NoteID).
			Int("classification", int(n.errorClassificator.Classify(err))).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// ListActive returns every non-archived note of the given owner, most
// recently touched first. An owner without notes yields an empty, non-nil
// slice.
func (n *noteRepository) ListActive(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.selectActiveNotesQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListActive").
			Str("owner_id", ownerID).
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListActive").
			Str("owner_id", ownerID).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.NoteID, &note.OwnerID, &note.Title, &note.Content, &note.Archived, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).
				Str("func", "noteRepository.ListActive").
				Str("owner_id", ownerID).
				Int("scanned so far", len(notes)).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListActive").
			Str("owner_id", ownerID).
			Msg("row iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// Update applies the non-nil fields of upd to the note identified by noteID
// and owned by ownerID, then reads back and returns the stored record.
//
// When no row matches both ids the result is [ErrNoteNotFound]: a note
// owned by someone else and a note that never existed are handled the same
// way. An upd with no fields set still succeeds and only touches updated_at.
func (n *noteRepository) Update(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.updateNoteQuery(ownerID, noteID, upd, n.now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Int("classification", int(n.errorClassificator.Classify(err))).
			Msg("failed to execute update statement")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Update").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to read affected rows")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return n.getNote(ctx, ownerID, noteID)
}

// Delete removes the note identified by noteID and owned by ownerID.
// Returns [ErrNoteNotFound] when no row matched both ids.
func (n *noteRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := n.deleteNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Int("classification", int(n.errorClassificator.Classify(err))).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// getNote reads back a single note after a successful mutation.
func (n *noteRepository) getNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.selectNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.getNote").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&note.NoteID, &note.OwnerID, &note.Title, &note.Content, &note.Archived, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// row vanished between the update and the read-back
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.getNote").
			Str("owner_id", ownerID).
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}
