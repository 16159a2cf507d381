package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a conversation subject students can practice on.
// Topics are created and edited only through admin operations and are
// read-only everywhere else.
type Topic struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Difficulty  Difficulty
	IsActive    bool
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TopicUpdateParams holds partial-update fields for a topic.
// Nil means "leave unchanged".
type TopicUpdateParams struct {
	Title       *string
	Description *string
	Category    *string
	Difficulty  *Difficulty
	IsActive    *bool
}

// TopicFilter narrows topic listings. Zero values mean "no filter".
type TopicFilter struct {
	Category   string
	Difficulty Difficulty
	ActiveOnly bool
}
