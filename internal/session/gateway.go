// Package session implements the client-side lifecycle of one practice
// conversation: a small state machine (NoSession, Active, Ended) over an
// abstract Gateway, an append-only exchange ledger with a derived mean
// accuracy, a history browser that never mutates the live session, and a
// one-second elapsed-time clock.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// ErrClosed is returned by machine operations after Close.
var ErrClosed = errors.New("session machine closed")

// Gateway is the backend contract the session machine consumes. Errors are
// surfaced to the caller verbatim; the machine defines no retry policy.
type Gateway interface {
	// CurrentUser returns the authenticated user's ID, or ErrUnauthorized
	// when nobody is signed in.
	CurrentUser(ctx context.Context) (uuid.UUID, error)

	// GetTopic returns the topic record, or ErrNotFound.
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)

	// ConversationHistory returns the user's conversations for a topic with
	// exchanges embedded. The order is not part of the contract; the machine
	// sorts defensively.
	ConversationHistory(ctx context.Context, userID, topicID uuid.UUID) ([]*domain.Conversation, error)

	// CreateSession creates a conversation seeded with the tutor's opening
	// exchange and returns it. The store stamps the start time; if an
	// unended conversation already exists for (user, topic) the store
	// returns that one instead of creating a duplicate.
	CreateSession(ctx context.Context, userID, topicID uuid.UUID) (*domain.Conversation, error)

	// AppendExchange stores one exchange on a running conversation and
	// returns the stored record.
	AppendExchange(ctx context.Context, ex *domain.Exchange) (*domain.Exchange, error)

	// CloseSession ends a conversation. The passed duration and accuracy
	// are the client's view; the store recomputes both from its own records
	// and the returned conversation carries the authoritative values.
	CloseSession(ctx context.Context, sessionID uuid.UUID, endedAt time.Time, duration int, accuracy *float64) (*domain.Conversation, error)
}
