package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/service"
	"github.com/vparshin/go-note-keeper/internal/store"
	"github.com/vparshin/go-note-keeper/internal/utils"
	"github.com/vparshin/go-note-keeper/models"
)

// ---- Mock: IdentityService ----

type mockIdentitySvc struct {
	ensureOwnerFn func(ctx context.Context, callerID string) error
}

func (m *mockIdentitySvc) EnsureOwner(ctx context.Context, callerID string) error {
	if m.ensureOwnerFn != nil {
		return m.ensureOwnerFn(ctx, callerID)
	}
	return nil
}

// ---- Mock: NoteService ----

type mockNoteSvc struct {
	createFn func(ctx context.Context, ownerID string, newNote models.NewNote) (models.Note, error)
	listFn   func(ctx context.Context, ownerID string) ([]models.Note, error)
	updateFn func(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, ownerID, noteID string) error
}

func (m *mockNoteSvc) CreateNote(ctx context.Context, ownerID string, newNote models.NewNote) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerID, newNote)
	}
	return models.Note{}, nil
}

func (m *mockNoteSvc) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return []models.Note{}, nil
}

func (m *mockNoteSvc) UpdateNote(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, ownerID, noteID, upd)
	}
	return models.Note{}, nil
}

func (m *mockNoteSvc) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, noteID)
	}
	return nil
}

// ---- Helpers ----

func newTestHandler(noteSvc service.NoteService, identitySvc service.IdentityService) *Handler {
	return &Handler{
		services: &service.Services{
			IdentityService: identitySvc,
			NoteService:     noteSvc,
		},
		defaultCallerID: "demo-user",
		logger:          logger.Nop(),
	}
}

func withCaller(r *http.Request, callerID string) *http.Request {
	return r.WithContext(utils.SetCallerIDToContext(r.Context(), callerID))
}

// ---- listNotes ----

func TestListNotes_ReturnsJSONArray(t *testing.T) {
	notes := []models.Note{
		{NoteID: "n1", OwnerID: "demo-user", Title: "first"},
		{NoteID: "n2", OwnerID: "demo-user", Title: "second"},
	}
	h := newTestHandler(&mockNoteSvc{
		listFn: func(ctx context.Context, ownerID string) ([]models.Note, error) {
			assert.Equal(t, "demo-user", ownerID)
			return notes, nil
		},
	}, &mockIdentitySvc{})

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/notes", nil), "demo-user")
	rr := httptest.NewRecorder()
	h.listNotes(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "n1", got[0].NoteID)
}

func TestListNotes_EmptyListEncodesAsEmptyArray(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{
		listFn: func(ctx context.Context, ownerID string) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}, &mockIdentitySvc{})

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/notes", nil), "demo-user")
	rr := httptest.NewRecorder()
	h.listNotes(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestListNotes_NoCallerInContext(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{}, &mockIdentitySvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rr := httptest.NewRecorder()
	h.listNotes(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ---- createNote ----

func TestCreateNote_Returns201WithStoredNote(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{
		createFn: func(ctx context.Context, ownerID string, newNote models.NewNote) (models.Note, error) {
			require.NotNil(t, newNote.Title)
			return models.Note{NoteID: "n1", OwnerID: ownerID, Title: *newNote.Title}, nil
		},
	}, &mockIdentitySvc{})

	body := strings.NewReader(`{"title":"groceries"}`)
	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/notes", body), "demo-user")
	rr := httptest.NewRecorder()
	h.createNote(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "n1", got.NoteID)
	assert.Equal(t, "groceries", got.Title)
}

func TestCreateNote_EmptyBodyIsRejected(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{}, &mockIdentitySvc{})

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("")), "demo-user")
	rr := httptest.NewRecorder()
	h.createNote(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{}, &mockIdentitySvc{})

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("{not json")), "demo-user")
	rr := httptest.NewRecorder()
	h.createNote(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ---- updateNote ----

func TestUpdateNote_MissingNoteIsServerError(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{
		updateFn: func(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}, &mockIdentitySvc{})

	body := strings.NewReader(`{"title":"renamed"}`)
	req := withCaller(httptest.NewRequest(http.MethodPut, "/api/notes/missing", body), "demo-user")
	rr := httptest.NewRecorder()
	h.updateNote(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdateNote_ReturnsUpdatedNote(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{
		updateFn: func(ctx context.Context, ownerID, noteID string, upd models.NoteUpdate) (models.Note, error) {
			require.NotNil(t, upd.Archived)
			return models.Note{NoteID: noteID, OwnerID: ownerID, Archived: *upd.Archived}, nil
		},
	}, &mockIdentitySvc{})

	body := strings.NewReader(`{"archived":true}`)
	req := withCaller(httptest.NewRequest(http.MethodPut, "/api/notes/n1", body), "demo-user")
	rr := httptest.NewRecorder()
	h.updateNote(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Archived)
}

// ---- deleteNote ----

func TestDeleteNote_Returns204NoBody(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{}, &mockIdentitySvc{})

	req := withCaller(httptest.NewRequest(http.MethodDelete, "/api/notes/n1", nil), "demo-user")
	rr := httptest.NewRecorder()
	h.deleteNote(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteNote_MissingNoteIsServerError(t *testing.T) {
	h := newTestHandler(&mockNoteSvc{
		deleteFn: func(ctx context.Context, ownerID, noteID string) error {
			return store.ErrNoteNotFound
		},
	}, &mockIdentitySvc{})

	req := withCaller(httptest.NewRequest(http.MethodDelete, "/api/notes/missing", nil), "demo-user")
	rr := httptest.NewRecorder()
	h.deleteNote(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
