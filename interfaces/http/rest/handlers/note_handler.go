package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"neuronotes-backend/application/services"
	"neuronotes-backend/pkg/common"
	apperrors "neuronotes-backend/pkg/errors"
	"neuronotes-backend/pkg/utils"
)

// NoteHandler handles note CRUD, scoped under a topic.
type NoteHandler struct {
	users  *services.UserService
	notes  *services.NoteService
	logger *zap.Logger
}

// NewNoteHandler creates a note handler.
func NewNoteHandler(users *services.UserService, notes *services.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{users: users, notes: notes, logger: logger}
}

// ListByTopic handles GET /notes/{topicid}.
func (h *NoteHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	topicID, ok := parseIDParam(w, r, "topicid", "topic")
	if !ok {
		return
	}

	notes, err := h.notes.ListByTopic(r.Context(), topicID, user.ID)
	if err != nil {
		// NotFound already carries the right message: the missing parent
		// reads "Topic not found.", the empty list "Notes not found.".
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Notes fetched successfully.", notes)
}

// Create handles POST /notes/.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}

	var req services.CreateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	note, err := h.notes.Create(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			common.RespondError(w, http.StatusNotFound, "Topic not found.", nil)
		case apperrors.IsInvalidTags(err):
			common.RespondError(w, http.StatusBadRequest, "Invalid tags.", nil)
		default:
			common.RespondAppError(w, err)
		}
		return
	}

	common.RespondSuccess(w, http.StatusCreated, "Note created successfully.", note)
}

// Get handles GET /notes/single/{noteid}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(w, r, "noteid", "note")
	if !ok {
		return
	}

	note, err := h.notes.Get(r.Context(), noteID, user.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Note not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Note fetched successfully.", note)
}

// Update handles PATCH /notes/{noteid}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(w, r, "noteid", "note")
	if !ok {
		return
	}

	var req services.UpdateNoteInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	note, err := h.notes.Update(r.Context(), noteID, user.ID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			common.RespondError(w, http.StatusNotFound, "Note not found.", nil)
		case apperrors.IsInvalidTags(err):
			common.RespondError(w, http.StatusBadRequest, "Invalid tags.", nil)
		default:
			common.RespondAppError(w, err)
		}
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Note updated successfully.", note)
}

// Delete handles DELETE /notes/{noteid}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(w, r, "noteid", "note")
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), noteID, user.ID); err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Note not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondDeleted(w, "Note deleted successfully.")
}
