package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// Start begins a practice conversation on a topic, or resumes the unfinished
// one if it exists. A resumed conversation keeps its original start time, so
// ElapsedSeconds reflects wall-clock time since the first exchange.
func (s *Service) Start(ctx context.Context, input StartInput) (*StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("conversation.Start get topic: %w", err)
	}
	if !topic.IsActive {
		return nil, fmt.Errorf("topic %s is inactive: %w", topic.ID, domain.ErrConflict)
	}

	// Resume path: an unfinished conversation wins over starting fresh.
	active, err := s.conversations.GetActive(ctx, userID, input.TopicID)
	if err == nil {
		s.log.InfoContext(ctx, "conversation resumed",
			slog.String("user_id", userID.String()),
			slog.String("conversation_id", active.ID.String()),
		)
		return &StartResult{
			Conversation:   active,
			Resumed:        true,
			ElapsedSeconds: active.ElapsedSeconds(s.now()),
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("conversation.Start get active: %w", err)
	}

	// Fresh start: conversation plus the tutor's opening line, atomically.
	var created *domain.Conversation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()

		conv, createErr := s.conversations.Create(txCtx, userID, input.TopicID, now)
		if createErr != nil {
			return fmt.Errorf("create conversation: %w", createErr)
		}

		opening, appendErr := s.conversations.AppendExchange(txCtx, &domain.Exchange{
			ConversationID: conv.ID,
			Role:           domain.RoleAI,
			Message:        s.cfg.OpeningMessage,
			Timestamp:      now,
		})
		if appendErr != nil {
			return fmt.Errorf("append opening exchange: %w", appendErr)
		}

		conv.Exchanges = []domain.Exchange{*opening}
		created = conv
		return nil
	})
	if err != nil {
		// Lost a race against another Start for the same (user, topic):
		// the partial unique index rejected the second row.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("conversation.Start: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("conversation.Start: %w", err)
	}

	s.log.InfoContext(ctx, "conversation started",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
		slog.String("conversation_id", created.ID.String()),
	)

	return &StartResult{Conversation: created}, nil
}
