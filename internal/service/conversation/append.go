package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// AppendExchange stores one pre-built exchange on a running conversation.
// Unlike SendMessage it does no scoring of its own: the caller supplies the
// role and, for student turns, the accuracy and feedback. Tutor turns count
// against the caller's usage quota the same way SendMessage replies do.
func (s *Service) AppendExchange(ctx context.Context, input AppendExchangeInput) (*domain.Exchange, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}

	conv, err := s.conversations.GetByID(ctx, input.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("conversation.AppendExchange get conversation: %w", err)
	}
	if conv.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if conv.IsEnded() {
		return nil, fmt.Errorf("conversation %s already ended: %w", conv.ID, domain.ErrConflict)
	}

	now := s.now()

	ex := &domain.Exchange{
		ConversationID: conv.ID,
		Role:           input.Role,
		Message:        input.message(),
		Timestamp:      now,
		Accuracy:       input.Accuracy,
		Feedback:       input.Feedback,
	}

	if input.Role != domain.RoleAI {
		stored, appendErr := s.conversations.AppendExchange(ctx, ex)
		if appendErr != nil {
			return nil, fmt.Errorf("conversation.AppendExchange: %w", appendErr)
		}
		return stored, nil
	}

	// Tutor turns burn quota: check it, then append and increment atomically.
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("conversation.AppendExchange get profile: %w", err)
	}
	if profile.QuotaExceeded(now) {
		return nil, fmt.Errorf("scoring quota exhausted until %s: %w",
			profile.APICallsResetAt.Format("2006-01-02"), domain.ErrForbidden)
	}

	var stored *domain.Exchange
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		appended, appendErr := s.conversations.AppendExchange(txCtx, ex)
		if appendErr != nil {
			return fmt.Errorf("append exchange: %w", appendErr)
		}
		if incErr := s.profiles.IncrementAPICalls(txCtx, userID, now, now.Add(s.cfg.QuotaWindow)); incErr != nil {
			return fmt.Errorf("increment quota: %w", incErr)
		}
		stored = appended
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("conversation.AppendExchange: %w", err)
	}

	s.log.DebugContext(ctx, "exchange appended",
		slog.String("conversation_id", conv.ID.String()),
		slog.String("role", input.Role.String()),
	)

	return stored, nil
}
