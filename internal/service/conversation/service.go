// Package conversation implements timed practice conversations: starting or
// resuming one per (user, topic), exchanging scored messages with the tutor,
// closing with an aggregate accuracy, and listing past attempts.
package conversation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/config"
	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

type conversationRepo interface {
	Create(ctx context.Context, userID, topicID uuid.UUID, startedAt time.Time) (*domain.Conversation, error)
	GetByID(ctx context.Context, conversationID uuid.UUID) (*domain.Conversation, error)
	GetActive(ctx context.Context, userID, topicID uuid.UUID) (*domain.Conversation, error)
	ListByUserTopic(ctx context.Context, userID, topicID uuid.UUID, limit int) ([]*domain.Conversation, error)
	Close(ctx context.Context, conversationID uuid.UUID, endedAt time.Time, duration int, accuracy *float64) error
	AppendExchange(ctx context.Context, ex *domain.Exchange) (*domain.Exchange, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	IncrementAPICalls(ctx context.Context, userID uuid.UUID, now, nextReset time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Scorer grades a student message, returning an accuracy percentage and a
// feedback line.
type Scorer interface {
	Score(ctx context.Context, message string) (accuracy float64, feedback string, err error)
}

// Responder produces the tutor's reply to a student message.
type Responder interface {
	Reply(ctx context.Context, conversation *domain.Conversation, message string) (string, error)
}

// Service provides practice conversation operations.
type Service struct {
	conversations conversationRepo
	topics        topicRepo
	profiles      profileRepo
	tx            txManager
	scorer        Scorer
	responder     Responder
	cfg           config.ConversationConfig
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new Conversation service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	topics topicRepo,
	profiles profileRepo,
	tx txManager,
	scorer Scorer,
	responder Responder,
	cfg config.ConversationConfig,
) *Service {
	return &Service{
		conversations: conversations,
		topics:        topics,
		profiles:      profiles,
		tx:            tx,
		scorer:        scorer,
		responder:     responder,
		cfg:           cfg,
		now:           time.Now,
		log:           log.With("service", "conversation"),
	}
}
