package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
	"github.com/parlezvous/parlezvous-backend/pkg/ctxutil"
)

// SendMessage records one student turn: the message is scored, stored with
// its accuracy and feedback, and answered by the tutor. Exactly two exchanges
// are appended; a failed turn appends nothing.
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (*SendResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}
	message := strings.TrimSpace(input.Message)

	conv, err := s.conversations.GetByID(ctx, input.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("conversation.SendMessage get conversation: %w", err)
	}
	if conv.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if conv.IsEnded() {
		return nil, fmt.Errorf("conversation %s already ended: %w", conv.ID, domain.ErrConflict)
	}

	now := s.now()

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("conversation.SendMessage get profile: %w", err)
	}
	if profile.QuotaExceeded(now) {
		return nil, fmt.Errorf("scoring quota exhausted until %s: %w",
			profile.APICallsResetAt.Format("2006-01-02"), domain.ErrForbidden)
	}

	accuracy, feedback, err := s.scorer.Score(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("conversation.SendMessage score: %w", err)
	}

	reply, err := s.responder.Reply(ctx, conv, message)
	if err != nil {
		return nil, fmt.Errorf("conversation.SendMessage reply: %w", err)
	}

	var result SendResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		student, appendErr := s.conversations.AppendExchange(txCtx, &domain.Exchange{
			ConversationID: conv.ID,
			Role:           domain.RoleStudent,
			Message:        message,
			Timestamp:      now,
			Accuracy:       &accuracy,
			Feedback:       &feedback,
		})
		if appendErr != nil {
			return fmt.Errorf("append student exchange: %w", appendErr)
		}

		ai, appendErr := s.conversations.AppendExchange(txCtx, &domain.Exchange{
			ConversationID: conv.ID,
			Role:           domain.RoleAI,
			Message:        reply,
			Timestamp:      s.now(),
		})
		if appendErr != nil {
			return fmt.Errorf("append tutor exchange: %w", appendErr)
		}

		if incErr := s.profiles.IncrementAPICalls(txCtx, userID, now, now.Add(s.cfg.QuotaWindow)); incErr != nil {
			return fmt.Errorf("increment quota: %w", incErr)
		}

		result = SendResult{StudentExchange: student, AIExchange: ai}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("conversation.SendMessage: %w", err)
	}

	s.log.InfoContext(ctx, "message exchanged",
		slog.String("user_id", userID.String()),
		slog.String("conversation_id", conv.ID.String()),
		slog.Float64("accuracy", accuracy),
	)

	return &result, nil
}
