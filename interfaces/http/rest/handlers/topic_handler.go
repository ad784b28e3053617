package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"neuronotes-backend/application/services"
	"neuronotes-backend/pkg/common"
	apperrors "neuronotes-backend/pkg/errors"
	"neuronotes-backend/pkg/utils"
)

// TopicHandler handles topic CRUD and the edge sub-resource.
type TopicHandler struct {
	users  *services.UserService
	topics *services.TopicService
	edges  *services.EdgeService
	logger *zap.Logger
}

// NewTopicHandler creates a topic handler.
func NewTopicHandler(users *services.UserService, topics *services.TopicService, edges *services.EdgeService, logger *zap.Logger) *TopicHandler {
	return &TopicHandler{users: users, topics: topics, edges: edges, logger: logger}
}

// Create handles POST /topics/.
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}

	var req services.CreateTopicInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	topic, err := h.topics.Create(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			common.RespondError(w, http.StatusConflict, "Topic already exists.", nil)
		case apperrors.IsInvalidEdge(err):
			common.RespondError(w, http.StatusBadRequest, "Invalid edge.", nil)
		default:
			common.RespondAppError(w, err)
		}
		return
	}

	common.RespondSuccess(w, http.StatusCreated, "Topic created successfully.", topic)
}

// List handles GET /topics/.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}

	topics, err := h.topics.List(r.Context(), user.ID)
	if err != nil {
		if apperrors.IsEmpty(err) {
			common.RespondError(w, http.StatusNotFound, "No topics found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Topics fetched successfully.", topics)
}

// Get handles GET /topics/{topicid}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	topicID, ok := parseIDParam(w, r, "topicid", "topic")
	if !ok {
		return
	}

	topic, err := h.topics.Get(r.Context(), topicID, user.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Topic not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Topic fetched successfully.", topic)
}

// Update handles PATCH /topics/{topicid}.
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	topicID, ok := parseIDParam(w, r, "topicid", "topic")
	if !ok {
		return
	}

	var req services.UpdateTopicInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	topic, err := h.topics.Update(r.Context(), topicID, user.ID, req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			common.RespondError(w, http.StatusNotFound, "Topic not found.", nil)
		case apperrors.IsAlreadyExists(err):
			common.RespondError(w, http.StatusConflict, "Topic already exists.", nil)
		case apperrors.IsInvalidEdge(err):
			common.RespondError(w, http.StatusBadRequest, "Invalid edge.", nil)
		default:
			common.RespondAppError(w, err)
		}
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Topic updated successfully.", topic)
}

// Delete handles DELETE /topics/{topicid}.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveCaller(w, r, h.users)
	if !ok {
		return
	}
	topicID, ok := parseIDParam(w, r, "topicid", "topic")
	if !ok {
		return
	}

	if err := h.topics.Delete(r.Context(), topicID, user.ID); err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Topic not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondDeleted(w, "Topic deleted successfully.")
}

// ListEdges handles GET /topics/{topicid}/edges.
func (h *TopicHandler) ListEdges(w http.ResponseWriter, r *http.Request) {
	if _, ok := resolveCaller(w, r, h.users); !ok {
		return
	}
	topicID, ok := parseIDParam(w, r, "topicid", "topic")
	if !ok {
		return
	}

	refs, err := h.edges.ListOutgoing(r.Context(), topicID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondSuccess(w, http.StatusOK, "Topic edges fetched successfully.", refs)
}

// CreateEdge handles POST /topics/topic-edges.
func (h *TopicHandler) CreateEdge(w http.ResponseWriter, r *http.Request) {
	if _, ok := resolveCaller(w, r, h.users); !ok {
		return
	}

	var req services.CreateEdgeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		common.RespondError(w, http.StatusBadRequest, "Validation failed.", fields)
		return
	}

	edge, err := h.edges.Create(r.Context(), req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			common.RespondError(w, http.StatusConflict, "Edge already exists.", nil)
		case apperrors.IsInvalidEdge(err):
			common.RespondError(w, http.StatusBadRequest, "Invalid edge.", nil)
		default:
			common.RespondError(w, http.StatusInternalServerError, "Failed to create edge.", nil)
		}
		return
	}

	common.RespondSuccess(w, http.StatusCreated, "Edge created successfully.", edge)
}

// DeleteEdge handles DELETE /topics/topic-edges/{source}/{target}.
func (h *TopicHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	if _, ok := resolveCaller(w, r, h.users); !ok {
		return
	}
	source, ok := parseIDParam(w, r, "source", "source topic")
	if !ok {
		return
	}
	target, ok := parseIDParam(w, r, "target", "target topic")
	if !ok {
		return
	}

	if err := h.edges.Delete(r.Context(), source, target); err != nil {
		if apperrors.IsNotFound(err) {
			common.RespondError(w, http.StatusNotFound, "Edge not found.", nil)
			return
		}
		common.RespondAppError(w, err)
		return
	}

	common.RespondDeleted(w, "Edge deleted successfully.")
}

// parseIDParam parses a UUID path parameter, writing the 400 envelope on
// failure.
func parseIDParam(w http.ResponseWriter, r *http.Request, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid "+label+" ID format.", nil)
		return uuid.Nil, false
	}
	return id, true
}
