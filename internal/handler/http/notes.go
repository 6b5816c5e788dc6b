package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/utils"
	"github.com/vparshin/go-note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, found := utils.GetCallerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listNotes").Msg("no caller id in context")
		http.Error(w, "no caller id in context", http.StatusInternalServerError)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, callerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, "error listing notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, found := utils.GetCallerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createNote").Msg("no caller id in context")
		http.Error(w, "no caller id in context", http.StatusInternalServerError)
		return
	}

	var newNote models.NewNote
	if err := json.NewDecoder(r.Body).Decode(&newNote); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, callerID, newNote)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, found := utils.GetCallerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateNote").Msg("no caller id in context")
		http.Error(w, "no caller id in context", http.StatusInternalServerError)
		return
	}

	noteID := chi.URLParam(r, "id")

	var upd models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, callerID, noteID, upd)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("note_id", noteID).Msg("error updating note")
		http.Error(w, "error updating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, found := utils.GetCallerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteNote").Msg("no caller id in context")
		http.Error(w, "no caller id in context", http.StatusInternalServerError)
		return
	}

	noteID := chi.URLParam(r, "id")

	if err := h.services.NoteService.DeleteNote(ctx, callerID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("note_id", noteID).Msg("error deleting note")
		http.Error(w, "error deleting note", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
