package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// Stop closes a running conversation: ended_at, the whole-second duration and
// the aggregate accuracy over scored student turns are written together,
// exactly once. A conversation with no scored student turn closes with a nil
// accuracy rather than a zero.
func (s *Service) Stop(ctx context.Context, conversationID uuid.UUID) (*domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if conversationID == uuid.Nil {
		return nil, domain.NewValidationError("conversation_id", "required")
	}

	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("conversation.Stop get conversation: %w", err)
	}
	if conv.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if conv.IsEnded() {
		return nil, fmt.Errorf("conversation %s already ended: %w", conv.ID, domain.ErrConflict)
	}

	endedAt := s.now()
	duration := conv.ElapsedSeconds(endedAt)
	accuracy := conv.AggregateAccuracy()

	if err := s.conversations.Close(ctx, conv.ID, endedAt, duration, accuracy); err != nil {
		return nil, fmt.Errorf("conversation.Stop close: %w", err)
	}

	conv.EndedAt = &endedAt
	conv.Duration = &duration
	conv.Accuracy = accuracy

	s.log.InfoContext(ctx, "conversation stopped",
		slog.String("user_id", userID.String()),
		slog.String("conversation_id", conv.ID.String()),
		slog.Int("duration_seconds", duration),
	)

	return conv, nil
}
