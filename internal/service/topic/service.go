// Package topic implements the practice-topic catalog: public listing for
// students and admin-gated management.
package topic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, filter domain.TopicFilter) ([]*domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	Update(ctx context.Context, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Delete(ctx context.Context, topicID uuid.UUID) error
	CountConversations(ctx context.Context, topicID uuid.UUID) (int, error)
}

// Service provides topic catalog operations.
type Service struct {
	topics topicRepo
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(log *slog.Logger, topics topicRepo) *Service {
	return &Service{
		topics: topics,
		log:    log.With("service", "topic"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
