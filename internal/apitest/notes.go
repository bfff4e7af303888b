package apitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

const msgNoteNotFound = "Note not found"

func (a *API) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	a.mu.RLock()
	notes := slices.Clone(a.notes[userID])
	a.mu.RUnlock()

	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, notes, http.StatusOK)
}

func (a *API) createNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	in, ok := a.decodeNoteInput(w, r)
	if !ok {
		return
	}

	now := models.NewTimestamp(a.now().UTC())
	note := models.Note{
		ID:        a.ids.Generate(),
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	a.mu.Lock()
	a.notes[userID] = append(a.notes[userID], note)
	a.mu.Unlock()

	logger.FromRequest(r).Debug().Str("note_id", note.ID).Msg("note created")
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (a *API) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	in, ok := a.decodeNoteInput(w, r)
	if !ok {
		return
	}

	a.mu.Lock()
	notes := a.notes[userID]
	idx := slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
	if idx < 0 {
		a.mu.Unlock()
		utils.WriteMessage(w, msgNoteNotFound, http.StatusNotFound)
		return
	}
	notes[idx].Title = in.Title
	notes[idx].Content = in.Content
	notes[idx].UpdatedAt = models.NewTimestamp(a.now().UTC())
	note := notes[idx]
	a.mu.Unlock()

	utils.WriteJSON(w, note, http.StatusOK)
}

func (a *API) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	a.mu.Lock()
	notes := a.notes[userID]
	idx := slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
	if idx < 0 {
		a.mu.Unlock()
		utils.WriteMessage(w, msgNoteNotFound, http.StatusNotFound)
		return
	}
	a.notes[userID] = slices.Delete(notes, idx, idx+1)
	a.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decodeNoteInput(w http.ResponseWriter, r *http.Request) (models.NoteInput, bool) {
	var in models.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return models.NoteInput{}, false
	}
	switch err := a.validator.Validate(r.Context(), in, validators.FieldTitle); {
	case errors.Is(err, validators.ErrTitleTooLong):
		utils.WriteMessage(w, "Title is too long", http.StatusBadRequest)
		return models.NoteInput{}, false
	case err != nil:
		utils.WriteMessage(w, "Title is required", http.StatusBadRequest)
		return models.NoteInput{}, false
	}
	return in, true
}
