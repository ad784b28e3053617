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

// TagHandler handles tag CRUD.
type TagHandler struct {
	users  *services.UserService
	tags   *services.TagService
	logger *zap.Logger
}

// NewTagHandler creates a tag handler.
func NewTagHandler(users *services.UserService, tags *services.TagService, logger *zap.Logger) *TagHandler {
	return &TagHandler{users: users, tags: tags, logger: logger}
}

// Create handles POST /tags/.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}

	var req services.CreateTagInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	tag, err := h.tags.Create(r.Context(), user.ID, req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			common.RespondError(w, http.StatusConflict, "Tag already exists.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusCreated, "Tag created successfully.", tag)
}

// List handles GET /tags/.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}

	tags, err := h.tags.List(r.Context(), user.ID)
	if err != nil {
		if apperrors.IsEmpty(err) {
			common.RespondError(w, http.StatusNotFound, "No tags found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Tags fetched successfully.", tags)
}

// Get handles GET /tags/{tagid}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	tagID, ok := parseIDParam(w, r, "tagid", "tag")
	if !ok {
		return
	}

	tag, err := h.tags.Get(r.Context(), tagID, user.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Tag not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Tag fetched successfully.", tag)
}

// Update handles PATCH /tags/{tagid}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	tagID, ok := parseIDParam(w, r, "tagid", "tag")
	if !ok {
		return
	}

	var req services.UpdateTagInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	tag, err := h.tags.Update(r.Context(), tagID, user.ID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			common.RespondError(w, http.StatusNotFound, "Tag not found.", nil)
		case apperrors.IsAlreadyExists(err):
			common.RespondError(w, http.StatusConflict, "Tag name already exists.", nil)
		default:
			common.RespondAppError(w, err)
		}
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Tag updated successfully.", tag)
}

// Delete handles DELETE /tags/{tagid}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	tagID, ok := parseIDParam(w, r, "tagid", "tag")
	if !ok {
		return
	}

	if err := h.tags.Delete(r.Context(), tagID, user.ID); err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Tag not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondDeleted(w, "Tag deleted successfully.")
}
