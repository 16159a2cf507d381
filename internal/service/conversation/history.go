package conversation

import (
	"context"
	"fmt"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// History returns the caller's past conversations for a topic, newest first,
// with exchanges embedded. The list is capped by the configured history limit
// and includes a still-running conversation if one exists.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]*domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	conversations, err := s.conversations.ListByUserTopic(ctx, userID, input.TopicID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("conversation.History: %w", err)
	}

	return conversations, nil
}
