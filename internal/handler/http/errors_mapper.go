package http

import (
	"errors"
	"net/http"

	"github.com/vparshin/go-note-keeper/internal/service"
	"github.com/vparshin/go-note-keeper/internal/store"
)

// errorStatusMap translates service and store errors into HTTP status
// codes. A mutation against a missing (or foreign) note maps to 500: the
// synchronizing client only mutates ids it received from a fresh listing,
// so a miss indicates a stale or misbehaving caller rather than a routine
// client error.
var errorStatusMap = map[error]int{
	service.ErrEmptyCallerID: http.StatusBadRequest,
	service.ErrEmptyNoteID:   http.StatusBadRequest,

	store.ErrNoteNotFound:  http.StatusInternalServerError,
	store.ErrOwnerNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
