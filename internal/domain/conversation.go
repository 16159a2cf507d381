package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is one timed practice attempt on a topic, bounded by
// StartedAt/EndedAt. EndedAt, Duration and Accuracy are set together,
// exactly once, when the conversation is closed; all three are nil while
// the conversation is still running.
//
// A conversation exclusively owns its exchanges: no exchange exists outside
// a conversation, and the exchange list is append-only — no edits, no
// reordering, no deletion.
type Conversation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TopicID   uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time
	Duration  *int // whole seconds
	Accuracy  *float64
	Exchanges []Exchange
}

// Exchange is a single message turn within a conversation.
// Accuracy and Feedback are only meaningful for RoleStudent turns.
type Exchange struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	Role           ExchangeRole
	Message        string
	Timestamp      time.Time
	Accuracy       *float64
	Feedback       *string
}

// IsEnded reports whether the conversation has been closed.
func (c *Conversation) IsEnded() bool {
	return c.EndedAt != nil
}

// AggregateAccuracy returns the arithmetic mean of the accuracy scores over
// all student exchanges that carry one, or nil when no student turn has been
// scored. It is computed fresh on every call; the exchange list is small and
// append-only, so nothing is cached.
func (c *Conversation) AggregateAccuracy() *float64 {
	var sum float64
	var n int
	for _, e := range c.Exchanges {
		if e.Role == RoleStudent && e.Accuracy != nil {
			sum += *e.Accuracy
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// ElapsedSeconds returns the whole seconds between StartedAt and now.
// Used to re-seed the session clock when resuming an unfinished conversation.
func (c *Conversation) ElapsedSeconds(now time.Time) int {
	secs := int(now.Sub(c.StartedAt) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
