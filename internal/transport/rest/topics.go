package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/internal/service/topic"
	"github.com/parlezvous/parlezvous-backend/internal/transport/middleware"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]*domain.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error
}

// TopicHandler serves the topic catalog endpoints. Listing and reading are
// open to any authenticated user; create/update/delete require admin.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topic")}
}

type createTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	IsActive    *bool  `json:"isActive"`
}

type updateTopicRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Difficulty  *string `json:"difficulty"`
	IsActive    *bool   `json:"isActive"`
}

// List handles GET /topics. Supports ?category=, ?difficulty= and ?active=
// filters; non-admin callers always get active topics only.
func (h *TopicHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Only admins may ask for inactive topics.
	activeOnly := q.Get("active") != "false" || !ctxutil.IsAdminCtx(r.Context())

	input := topic.ListTopicsInput{
		Category:   q.Get("category"),
		Difficulty: domain.Difficulty(q.Get("difficulty")),
		ActiveOnly: activeOnly,
	}

	topics, err := h.svc.ListTopics(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"topics": toTopicResponses(topics)})
}

// Get handles GET /topics/{id}.
func (h *TopicHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	t, err := h.svc.GetTopic(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Create handles POST /topics (admin only).
func (h *TopicHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.CreateTopic(r.Context(), topic.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  domain.Difficulty(req.Difficulty),
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(t))
}

// Update handles PATCH /topics/{id} (admin only).
func (h *TopicHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	var req updateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := topic.UpdateTopicInput{
		TopicID:     id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		input.Difficulty = &d
	}

	t, err := h.svc.UpdateTopic(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(t))
}

// Delete handles DELETE /topics/{id} (admin only).
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
