// Package topic implements the Topic repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the filtered listing is built
// dynamically with squirrel.
package topic

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres"
	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const topicColumns = `id, title, description, category, difficulty, is_active, created_by, created_at, updated_at`

const getByIDSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE id = $1`

const createSQL = `
INSERT INTO topics (title, description, category, difficulty, is_active, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + topicColumns

const deleteSQL = `DELETE FROM topics WHERE id = $1`

const countConversationsSQL = `SELECT count(*) FROM conversations WHERE topic_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByIDSQL, topicID)

	topic, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return topic, nil
}

// List returns topics matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.TopicFilter) ([]*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := psql.Select(
		"id", "title", "description", "category", "difficulty",
		"is_active", "created_by", "created_at", "updated_at",
	).
		From("topics").
		OrderBy("created_at DESC")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Difficulty != "" {
		builder = builder.Where(sq.Eq{"difficulty": string(filter.Difficulty)})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics, err := scanTopics(rows)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// CountConversations returns the number of conversations referencing a topic.
// Used by the delete guard.
func (r *Repo) CountConversations(ctx context.Context, topicID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countConversationsSQL, topicID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count conversations by topic: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted domain.Topic.
func (r *Repo) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL,
		topic.Title,
		topic.Description,
		topic.Category,
		string(topic.Difficulty),
		topic.IsActive,
		topic.CreatedBy,
	)

	created, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return created, nil
}

// Update modifies a topic using partial update params (nil = unchanged).
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	builder := psql.Update("topics").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID}).
		Suffix("RETURNING " + topicColumns)

	if params.Title != nil {
		builder = builder.Set("title", *params.Title)
	}
	if params.Description != nil {
		builder = builder.Set("description", *params.Description)
	}
	if params.Category != nil {
		builder = builder.Set("category", *params.Category)
	}
	if params.Difficulty != nil {
		builder = builder.Set("difficulty", string(*params.Difficulty))
	}
	if params.IsActive != nil {
		builder = builder.Set("is_active", *params.IsActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic query: %w", err)
	}

	row := querier.QueryRow(ctx, query, args...)

	updated, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return updated, nil
}

// Delete removes a topic. The FK from conversations is RESTRICT, so a topic
// referenced by any conversation maps to domain.ErrConflict.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, topicID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, deleteSQL, topicID)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanTopic scans a single topic row from pgx.Row.
func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		id          uuid.UUID
		title       string
		description string
		category    string
		difficulty  string
		isActive    bool
		createdBy   pgtype.UUID
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &title, &description, &category, &difficulty, &isActive, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return buildTopic(id, title, description, category, difficulty, isActive, createdBy, createdAt, updatedAt), nil
}

// scanTopics scans multiple topic rows from pgx.Rows.
func scanTopics(rows pgx.Rows) ([]*domain.Topic, error) {
	var topics []*domain.Topic
	for rows.Next() {
		var (
			id          uuid.UUID
			title       string
			description string
			category    string
			difficulty  string
			isActive    bool
			createdBy   pgtype.UUID
			createdAt   time.Time
			updatedAt   time.Time
		)

		if err := rows.Scan(&id, &title, &description, &category, &difficulty, &isActive, &createdBy, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		topics = append(topics, buildTopic(id, title, description, category, difficulty, isActive, createdBy, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if topics == nil {
		topics = []*domain.Topic{}
	}

	return topics, nil
}

func buildTopic(id uuid.UUID, title, description, category, difficulty string, isActive bool, createdBy pgtype.UUID, createdAt, updatedAt time.Time) *domain.Topic {
	t := &domain.Topic{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    category,
		Difficulty:  domain.Difficulty(difficulty),
		IsActive:    isActive,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if createdBy.Valid {
		creator := uuid.UUID(createdBy.Bytes)
		t.CreatedBy = &creator
	}

	return t
}
