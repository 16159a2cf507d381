package rest

import (
	"time"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

type profileResponse struct {
	ID               string    `json:"id"`
	DisplayName      string    `json:"displayName"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	LearningLanguage string    `json:"learningLanguage"`
	LearningLevel    string    `json:"learningLevel"`
	APICallsLimit    int       `json:"apiCallsLimit"`
	APICallsCount    int       `json:"apiCallsCount"`
	APICallsResetAt  time.Time `json:"apiCallsResetAt"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:               p.ID.String(),
		DisplayName:      p.DisplayName,
		Email:            p.Email,
		Role:             p.Role.String(),
		LearningLanguage: p.LearningLanguage,
		LearningLevel:    p.LearningLevel,
		APICallsLimit:    p.APICallsLimit,
		APICallsCount:    p.APICallsCount,
		APICallsResetAt:  p.APICallsResetAt,
		CreatedAt:        p.CreatedAt,
	}
}

type topicResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Difficulty:  t.Difficulty.String(),
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTopicResponses(topics []*domain.Topic) []topicResponse {
	out := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	return out
}

type exchangeResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	Accuracy       *float64  `json:"accuracy,omitempty"`
	Feedback       *string   `json:"feedback,omitempty"`
}

func toExchangeResponse(e *domain.Exchange) exchangeResponse {
	return exchangeResponse{
		ID:             e.ID.String(),
		ConversationID: e.ConversationID.String(),
		Role:           e.Role.String(),
		Message:        e.Message,
		Timestamp:      e.Timestamp,
		Accuracy:       e.Accuracy,
		Feedback:       e.Feedback,
	}
}

type conversationResponse struct {
	ID        string             `json:"id"`
	TopicID   string             `json:"topicId"`
	StartedAt time.Time          `json:"startedAt"`
	EndedAt   *time.Time         `json:"endedAt,omitempty"`
	Duration  *int               `json:"duration,omitempty"`
	Accuracy  *float64           `json:"accuracy,omitempty"`
	Exchanges []exchangeResponse `json:"exchanges"`
}

func toConversationResponse(c *domain.Conversation) conversationResponse {
	exchanges := make([]exchangeResponse, 0, len(c.Exchanges))
	for i := range c.Exchanges {
		exchanges = append(exchanges, toExchangeResponse(&c.Exchanges[i]))
	}
	return conversationResponse{
		ID:        c.ID.String(),
		TopicID:   c.TopicID.String(),
		StartedAt: c.StartedAt,
		EndedAt:   c.EndedAt,
		Duration:  c.Duration,
		Accuracy:  c.Accuracy,
		Exchanges: exchanges,
	}
}

func toConversationResponses(convs []*domain.Conversation) []conversationResponse {
	out := make([]conversationResponse, 0, len(convs))
	for _, c := range convs {
		out = append(out, toConversationResponse(c))
	}
	return out
}
