// Package profile implements the authenticated user's profile operations.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by the service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, params domain.ProfileUpdateParams) (*domain.Profile, error)
}

// Service implements profile read and update operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}
