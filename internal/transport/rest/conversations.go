package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/internal/service/conversation"
)

// conversationService defines the minimal interface needed by ConversationHandler.
type conversationService interface {
	Start(ctx context.Context, input conversation.StartInput) (*conversation.StartResult, error)
	SendMessage(ctx context.Context, input conversation.SendMessageInput) (*conversation.SendResult, error)
	AppendExchange(ctx context.Context, input conversation.AppendExchangeInput) (*domain.Exchange, error)
	Stop(ctx context.Context, conversationID uuid.UUID) (*domain.Conversation, error)
	History(ctx context.Context, input conversation.HistoryInput) ([]*domain.Conversation, error)
}

// ConversationHandler serves practice conversation endpoints.
type ConversationHandler struct {
	svc conversationService
	log *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(svc conversationService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: logger.With("handler", "conversation")}
}

type startRequest struct {
	TopicID string `json:"topicId"`
}

type startResponse struct {
	Conversation   conversationResponse `json:"conversation"`
	Resumed        bool                 `json:"resumed"`
	ElapsedSeconds int                  `json:"elapsedSeconds"`
}

type sendMessageRequest struct {
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Student exchangeResponse `json:"student"`
	AI      exchangeResponse `json:"ai"`
}

type appendExchangeRequest struct {
	Role     string   `json:"role"`
	Message  string   `json:"message"`
	Accuracy *float64 `json:"accuracy"`
	Feedback *string  `json:"feedback"`
}

// Start handles POST /conversations/start. Resumes an unfinished
// conversation on the same topic instead of creating a second one.
func (h *ConversationHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	result, err := h.svc.Start(r.Context(), conversation.StartInput{TopicID: topicID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Resumed {
		status = http.StatusOK
	}
	writeJSON(w, status, startResponse{
		Conversation:   toConversationResponse(result.Conversation),
		Resumed:        result.Resumed,
		ElapsedSeconds: result.ElapsedSeconds,
	})
}

// Send handles POST /conversations/{id}/message: one student turn, scored
// server-side, answered by the tutor.
func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SendMessage(r.Context(), conversation.SendMessageInput{
		ConversationID: id,
		Message:        req.Message,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sendMessageResponse{
		Student: toExchangeResponse(result.StudentExchange),
		AI:      toExchangeResponse(result.AIExchange),
	})
}

// Append handles POST /conversations/{id}/exchanges: stores one pre-built
// exchange as-is. Clients that score and reply locally use this instead of
// the message endpoint.
func (h *ConversationHandler) Append(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	var req appendExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exchange, err := h.svc.AppendExchange(r.Context(), conversation.AppendExchangeInput{
		ConversationID: id,
		Role:           domain.ExchangeRole(req.Role),
		Message:        req.Message,
		Accuracy:       req.Accuracy,
		Feedback:       req.Feedback,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExchangeResponse(exchange))
}

// Close handles POST /conversations/{id}/close. The stored end time,
// duration and aggregate accuracy in the response are authoritative.
func (h *ConversationHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	conv, err := h.svc.Stop(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversationResponse(conv))
}

// History handles GET /conversations/history?topicId=.
func (h *ConversationHandler) History(w http.ResponseWriter, r *http.Request) {
	topicID, err := uuid.Parse(r.URL.Query().Get("topicId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	convs, err := h.svc.History(r.Context(), conversation.HistoryInput{TopicID: topicID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"conversations": toConversationResponses(convs)})
}
