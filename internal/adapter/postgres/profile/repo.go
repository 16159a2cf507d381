// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres"
	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const profileColumns = `id, display_name, email, role, is_admin, learning_language, learning_level,
	api_calls_limit, api_calls_count, api_calls_reset_at, created_at, updated_at`

const createSQL = `
INSERT INTO profiles (display_name, email, password_hash, role, is_admin,
                      api_calls_limit, api_calls_reset_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + profileColumns

const getByIDSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE email = $1`

const getPasswordHashSQL = `SELECT password_hash FROM profiles WHERE email = $1`

// incrementAPICallsSQL opens a fresh quota window when the old one has lapsed,
// otherwise just bumps the counter.
const incrementAPICallsSQL = `
UPDATE profiles
SET api_calls_count = CASE WHEN api_calls_reset_at < $2 THEN 1 ELSE api_calls_count + 1 END,
    api_calls_reset_at = CASE WHEN api_calls_reset_at < $2 THEN $3 ELSE api_calls_reset_at END,
    updated_at = now()
WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new profile with its password hash.
// A duplicate email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Profile, passwordHash string) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		p.DisplayName,
		p.Email,
		passwordHash,
		string(p.Role),
		p.IsAdmin,
		p.APICallsLimit,
		p.APICallsResetAt,
	)

	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	return created, nil
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	profile, err := scanProfile(querier.QueryRow(ctx, getByIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return profile, nil
}

// GetByEmail returns a profile by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	profile, err := scanProfile(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	return profile, nil
}

// GetPasswordHash returns the stored bcrypt hash for an email.
// The hash is never part of domain.Profile so it cannot leak through handlers.
func (r *Repo) GetPasswordHash(ctx context.Context, email string) (string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var hash string
	if err := querier.QueryRow(ctx, getPasswordHashSQL, email).Scan(&hash); err != nil {
		return "", postgres.MapError(err, "profile", uuid.Nil)
	}

	return hash, nil
}

// Update modifies a profile using partial update params (nil = unchanged).
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, params domain.ProfileUpdateParams) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := psql.Update("profiles").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + profileColumns)

	if params.DisplayName != nil {
		builder = builder.Set("display_name", *params.DisplayName)
	}
	if params.LearningLanguage != nil {
		builder = builder.Set("learning_language", *params.LearningLanguage)
	}
	if params.LearningLevel != nil {
		builder = builder.Set("learning_level", *params.LearningLevel)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update profile query: %w", err)
	}

	updated, err := scanProfile(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return updated, nil
}

// IncrementAPICalls records one scoring call against the quota. When the
// current window has lapsed it restarts the counter at 1 with a new reset
// time; otherwise it increments in place.
func (r *Repo) IncrementAPICalls(ctx context.Context, userID uuid.UUID, now, nextReset time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, incrementAPICallsSQL, userID, now, nextReset)
	if err != nil {
		return postgres.MapError(err, "profile", userID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p    domain.Profile
		role string
	)
	err := row.Scan(
		&p.ID, &p.DisplayName, &p.Email, &role, &p.IsAdmin,
		&p.LearningLanguage, &p.LearningLevel,
		&p.APICallsLimit, &p.APICallsCount, &p.APICallsResetAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Role = domain.UserRole(role)
	return &p, nil
}
