package service

import "errors"

var (
	ErrEmptyCallerID = errors.New("empty caller id")
	ErrEmptyNoteID   = errors.New("empty note id")

	// ErrEmptyDraft is returned by the client synchronizer when a new note
	// draft contains nothing but whitespace in both title and content.
	ErrEmptyDraft = errors.New("empty note draft")
)
