package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// UpdateTopic applies a partial update to a topic. Admin only.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Update(ctx, input.TopicID, domain.TopicUpdateParams{
		Title:       trimOrNil(input.Title),
		Description: input.Description,
		Category:    trimOrNil(input.Category),
		Difficulty:  input.Difficulty,
		IsActive:    input.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("topic.UpdateTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
	)

	return topic, nil
}
