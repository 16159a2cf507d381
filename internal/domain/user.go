package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an authenticated application user.
// The ID matches the auth identity (JWT subject).
type Profile struct {
	ID               uuid.UUID
	DisplayName      string
	Email            string
	Role             UserRole
	IsAdmin          bool
	LearningLanguage string
	LearningLevel    string
	APICallsLimit    int
	APICallsCount    int
	APICallsResetAt  time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// QuotaExceeded reports whether the usage quota is spent for the current
// window. A window whose reset time has passed never counts as exceeded.
func (p *Profile) QuotaExceeded(now time.Time) bool {
	if now.After(p.APICallsResetAt) {
		return false
	}
	return p.APICallsCount >= p.APICallsLimit
}

// ProfileUpdateParams holds partial-update fields for a profile.
// Nil means "leave unchanged".
type ProfileUpdateParams struct {
	DisplayName      *string
	LearningLanguage *string
	LearningLevel    *string
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
