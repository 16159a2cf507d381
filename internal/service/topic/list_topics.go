package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// ListTopics returns the topic catalog. Students only ever see active topics;
// admins see inactive ones too unless they ask for active only.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TopicFilter{
		Category:   input.Category,
		Difficulty: input.Difficulty,
		ActiveOnly: input.ActiveOnly,
	}
	if !ctxutil.IsAdminCtx(ctx) {
		filter.ActiveOnly = true
	}

	topics, err := s.topics.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("topic.ListTopics: %w", err)
	}

	return topics, nil
}

// GetTopic returns a single topic by ID. Inactive topics are hidden from
// non-admin users.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("topic.GetTopic: %w", err)
	}

	if !topic.IsActive && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return topic, nil
}
