package models

import "time"

// Note is a single text note owned by exactly one user. Ownership is set at
// creation and never changes; there is no transfer operation.
//
// Archived is a list filter, not a deletion: archived notes stay in the
// database and can be brought back by clearing the flag. UpdatedAt is
// refreshed on every successful mutation and drives the list ordering:
// the most recently touched note comes first.
type Note struct {
	NoteID    string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Archived  bool      `json:"archived"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNote carries the create-request body. Both fields are optional on the
// wire; absent fields stay nil and the store defaults them to empty strings.
type NewNote struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteUpdate carries the update-request body. Only non-nil fields are
// applied; the store stamps updated_at regardless of which subset is set.
type NoteUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Archived *bool   `json:"archived"`
}
