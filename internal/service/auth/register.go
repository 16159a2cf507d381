package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// Register creates a new profile with email + password authentication and
// the configured default role. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	role := domain.UserRole(s.cfg.DefaultRole)
	newProfile := &domain.Profile{
		DisplayName:     input.DisplayName,
		Email:           input.Email,
		Role:            role,
		IsAdmin:         role.IsAdmin(),
		APICallsLimit:   s.conv.DefaultQuota,
		APICallsResetAt: time.Now().Add(s.conv.QuotaWindow),
	}

	// Email uniqueness is enforced by a DB constraint.
	profile, err := s.profiles.Create(ctx, newProfile, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", profile.ID.String()),
		slog.String("role", profile.Role.String()))

	return result, nil
}
