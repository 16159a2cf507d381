// Package conversation implements the Conversation repository using PostgreSQL.
package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres"
	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// Repo provides conversation and exchange persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new conversation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const conversationColumns = `id, user_id, topic_id, started_at, ended_at, duration, accuracy`

const createSQL = `
INSERT INTO conversations (user_id, topic_id, started_at)
VALUES ($1, $2, $3)
RETURNING ` + conversationColumns

const getByIDSQL = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE id = $1`

const getActiveSQL = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE user_id = $1 AND topic_id = $2 AND ended_at IS NULL
ORDER BY started_at DESC
LIMIT 1`

const listByUserTopicSQL = `
SELECT ` + conversationColumns + `
FROM conversations
WHERE user_id = $1 AND topic_id = $2
ORDER BY started_at DESC
LIMIT $3`

// closeSQL sets the terminal fields in a single statement and only fires for
// a still-running conversation, so a conversation can never be closed twice.
const closeSQL = `
UPDATE conversations
SET ended_at = $2, duration = $3, accuracy = $4
WHERE id = $1 AND ended_at IS NULL`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM conversations WHERE id = $1)`

const appendExchangeSQL = `
INSERT INTO conversation_exchanges (conversation_id, role, message, timestamp, accuracy, feedback)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const listExchangesSQL = `
SELECT id, conversation_id, role, message, timestamp, accuracy, feedback
FROM conversation_exchanges
WHERE conversation_id = $1
ORDER BY seq`

const listExchangesBatchSQL = `
SELECT id, conversation_id, role, message, timestamp, accuracy, feedback
FROM conversation_exchanges
WHERE conversation_id = ANY($1)
ORDER BY conversation_id, seq`

// ---------------------------------------------------------------------------
// Conversations
// ---------------------------------------------------------------------------

// Create inserts a new conversation. The active-conversation guard is enforced
// by a partial unique index, so a second unended conversation for the same
// (user, topic) maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID, topicID uuid.UUID, startedAt time.Time) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, createSQL, userID, topicID, startedAt)

	conv, err := scanConversation(row)
	if err != nil {
		return nil, postgres.MapError(err, "conversation", uuid.Nil)
	}

	return conv, nil
}

// GetByID returns a conversation with its exchanges.
// Returns domain.ErrNotFound if the conversation does not exist.
func (r *Repo) GetByID(ctx context.Context, conversationID uuid.UUID) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByIDSQL, conversationID)

	conv, err := scanConversation(row)
	if err != nil {
		return nil, postgres.MapError(err, "conversation", conversationID)
	}

	exchanges, err := r.ListExchanges(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	conv.Exchanges = exchanges

	return conv, nil
}

// GetActive returns the unended conversation for (user, topic) with its
// exchanges. Returns domain.ErrNotFound if none is running.
func (r *Repo) GetActive(ctx context.Context, userID, topicID uuid.UUID) (*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getActiveSQL, userID, topicID)

	conv, err := scanConversation(row)
	if err != nil {
		return nil, postgres.MapError(err, "conversation", uuid.Nil)
	}

	exchanges, err := r.ListExchanges(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	conv.Exchanges = exchanges

	return conv, nil
}

// ListByUserTopic returns up to limit conversations for (user, topic), newest
// first, each with its exchanges embedded in insertion order.
func (r *Repo) ListByUserTopic(ctx context.Context, userID, topicID uuid.UUID, limit int) ([]*domain.Conversation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByUserTopicSQL, userID, topicID, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	conversations, err := scanConversations(rows)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	if len(conversations) == 0 {
		return conversations, nil
	}

	ids := make([]uuid.UUID, len(conversations))
	byID := make(map[uuid.UUID]*domain.Conversation, len(conversations))
	for i, c := range conversations {
		ids[i] = c.ID
		byID[c.ID] = c
		c.Exchanges = []domain.Exchange{}
	}

	exRows, err := querier.Query(ctx, listExchangesBatchSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("list conversation exchanges: %w", err)
	}
	defer exRows.Close()

	for exRows.Next() {
		ex, err := scanExchangeFromRows(exRows)
		if err != nil {
			return nil, fmt.Errorf("scan conversation exchange: %w", err)
		}
		if c, ok := byID[ex.ConversationID]; ok {
			c.Exchanges = append(c.Exchanges, ex)
		}
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("list conversation exchanges: %w", err)
	}

	return conversations, nil
}

// Close stamps ended_at, duration and accuracy in one statement.
// Returns domain.ErrConflict if the conversation is already ended and
// domain.ErrNotFound if it does not exist.
func (r *Repo) Close(ctx context.Context, conversationID uuid.UUID, endedAt time.Time, duration int, accuracy *float64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, closeSQL, conversationID, endedAt, duration, accuracy)
	if err != nil {
		return postgres.MapError(err, "conversation", conversationID)
	}

	if ct.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, conversationID).Scan(&exists); err != nil {
		return fmt.Errorf("check conversation exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("conversation %s: %w", conversationID, domain.ErrNotFound)
	}
	return fmt.Errorf("conversation %s already ended: %w", conversationID, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Exchanges
// ---------------------------------------------------------------------------

// AppendExchange inserts one exchange row and fills in the generated ID.
// Returns domain.ErrNotFound if the conversation does not exist.
func (r *Repo) AppendExchange(ctx context.Context, ex *domain.Exchange) (*domain.Exchange, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	out := *ex
	err := querier.QueryRow(ctx, appendExchangeSQL,
		ex.ConversationID,
		string(ex.Role),
		ex.Message,
		ex.Timestamp,
		ex.Accuracy,
		ex.Feedback,
	).Scan(&out.ID)
	if err != nil {
		return nil, postgres.MapError(err, "exchange", ex.ConversationID)
	}

	return &out, nil
}

// ListExchanges returns all exchanges of a conversation in insertion order.
func (r *Repo) ListExchanges(ctx context.Context, conversationID uuid.UUID) ([]domain.Exchange, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listExchangesSQL, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list exchanges: %w", err)
	}
	defer rows.Close()

	exchanges := []domain.Exchange{}
	for rows.Next() {
		ex, err := scanExchangeFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}
		exchanges = append(exchanges, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exchanges: %w", err)
	}

	return exchanges, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := row.Scan(&c.ID, &c.UserID, &c.TopicID, &c.StartedAt, &c.EndedAt, &c.Duration, &c.Accuracy); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanConversations(rows pgx.Rows) ([]*domain.Conversation, error) {
	var conversations []*domain.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if conversations == nil {
		conversations = []*domain.Conversation{}
	}

	return conversations, nil
}

func scanExchangeFromRows(rows pgx.Rows) (domain.Exchange, error) {
	var (
		ex   domain.Exchange
		role string
	)
	if err := rows.Scan(&ex.ID, &ex.ConversationID, &role, &ex.Message, &ex.Timestamp, &ex.Accuracy, &ex.Feedback); err != nil {
		return domain.Exchange{}, err
	}
	ex.Role = domain.ExchangeRole(role)
	return ex, nil
}
