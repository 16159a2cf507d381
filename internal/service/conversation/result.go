package conversation

import "github.com/parlezvous/parlezvous-backend/internal/domain"

// StartResult is returned by Start. Resumed is true when an unfinished
// conversation was picked up instead of a new one being created;
// ElapsedSeconds seeds the client's session clock in that case.
type StartResult struct {
	Conversation   *domain.Conversation
	Resumed        bool
	ElapsedSeconds int
}

// SendResult carries the two exchanges appended by one student turn.
type SendResult struct {
	StudentExchange *domain.Exchange
	AIExchange      *domain.Exchange
}
