package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// DeleteTopic removes a topic. Admin only. A topic referenced by any
// conversation cannot be deleted and yields ErrConflict; the FK constraint
// backs this check for writes racing past it.
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if topicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}

	count, err := s.topics.CountConversations(ctx, topicID)
	if err != nil {
		return fmt.Errorf("topic.DeleteTopic count conversations: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("topic %s has %d conversations: %w", topicID, count, domain.ErrConflict)
	}

	if err := s.topics.Delete(ctx, topicID); err != nil {
		return fmt.Errorf("topic.DeleteTopic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topicID.String()),
	)

	return nil
}
