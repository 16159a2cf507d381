package profile

import (
	"strings"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// UpdateProfileInput holds parameters for the profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	DisplayName      *string
	LearningLanguage *string
	LearningLevel    *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName == nil && i.LearningLanguage == nil && i.LearningLevel == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be set"})
	}

	if i.DisplayName != nil {
		name := strings.TrimSpace(*i.DisplayName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "cannot be empty"})
		} else if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
		}
	}

	if i.LearningLanguage != nil {
		lang := strings.TrimSpace(*i.LearningLanguage)
		if lang == "" {
			errs = append(errs, domain.FieldError{Field: "learning_language", Message: "cannot be empty"})
		} else if len(lang) > 32 {
			errs = append(errs, domain.FieldError{Field: "learning_language", Message: "too long"})
		}
	}

	if i.LearningLevel != nil && !domain.Difficulty(*i.LearningLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "learning_level", Message: "must be beginner, intermediate or advanced"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// params converts the input into repository update parameters, trimming
// whitespace on the way.
func (i UpdateProfileInput) params() domain.ProfileUpdateParams {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		t := strings.TrimSpace(*s)
		return &t
	}
	return domain.ProfileUpdateParams{
		DisplayName:      trim(i.DisplayName),
		LearningLanguage: trim(i.LearningLanguage),
		LearningLevel:    trim(i.LearningLevel),
	}
}
