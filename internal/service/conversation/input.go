package conversation

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// StartInput holds parameters for starting or resuming a conversation.
type StartInput struct {
	TopicID uuid.UUID
}

// Validate validates the start input.
func (i StartInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

// SendMessageInput holds parameters for one student turn.
type SendMessageInput struct {
	ConversationID uuid.UUID
	Message        string
}

// Validate validates the message input against the configured length limit.
func (i SendMessageInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if i.ConversationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "required"})
	}

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if utf8.RuneCountInString(msg) > maxLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AppendExchangeInput holds parameters for storing one pre-built exchange.
type AppendExchangeInput struct {
	ConversationID uuid.UUID
	Role           domain.ExchangeRole
	Message        string
	Accuracy       *float64
	Feedback       *string
}

// Validate validates the exchange input against the configured length limit.
func (i AppendExchangeInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if i.ConversationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "required"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be student or ai"})
	}

	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	} else if utf8.RuneCountInString(msg) > maxLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if i.Accuracy != nil {
		if i.Role != domain.RoleStudent {
			errs = append(errs, domain.FieldError{Field: "accuracy", Message: "only student turns carry accuracy"})
		} else if *i.Accuracy < 0 || *i.Accuracy > 100 {
			errs = append(errs, domain.FieldError{Field: "accuracy", Message: "must be between 0 and 100"})
		}
	}

	if i.Feedback != nil && i.Role != domain.RoleStudent {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "only student turns carry feedback"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// message returns the trimmed message text.
func (i AppendExchangeInput) message() string {
	return strings.TrimSpace(i.Message)
}

// HistoryInput holds parameters for listing past conversations on a topic.
type HistoryInput struct {
	TopicID uuid.UUID
}

// Validate validates the history input.
func (i HistoryInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}
