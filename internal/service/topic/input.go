package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title       string
	Description string
	Category    string
	Difficulty  domain.Difficulty
	IsActive    *bool // nil = active
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}

	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate or advanced"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for a partial topic update.
type UpdateTopicInput struct {
	TopicID     uuid.UUID
	Title       *string
	Description *string
	Category    *string
	Difficulty  *domain.Difficulty
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}

	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be beginner, intermediate or advanced"})
	}

	if i.Title == nil && i.Description == nil && i.Category == nil && i.Difficulty == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "params", Message: "at least one field must be set"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListTopicsInput holds optional catalog filters.
type ListTopicsInput struct {
	Category   string
	Difficulty domain.Difficulty
	ActiveOnly bool
}

// Validate checks the filter values.
func (i ListTopicsInput) Validate() error {
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		return domain.NewValidationError("difficulty", "must be beginner, intermediate or advanced")
	}
	return nil
}
