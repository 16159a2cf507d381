package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a student profile with default quota settings.
// Returns a filled domain.Profile.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.Profile{
		ID:               uuid.New(),
		DisplayName:      "Test Student " + suffix,
		Email:            "student-" + suffix + "@example.com",
		Role:             domain.UserRoleStudent,
		IsAdmin:          false,
		LearningLanguage: "french",
		LearningLevel:    "beginner",
		APICallsLimit:    500,
		APICallsCount:    0,
		APICallsResetAt:  now.Add(30 * 24 * time.Hour),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, display_name, email, password_hash, role, is_admin,
		                       learning_language, learning_level,
		                       api_calls_limit, api_calls_count, api_calls_reset_at,
		                       created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		profile.ID, profile.DisplayName, profile.Email, "x-not-a-real-hash",
		string(profile.Role), profile.IsAdmin,
		profile.LearningLanguage, profile.LearningLevel,
		profile.APICallsLimit, profile.APICallsCount, profile.APICallsResetAt,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return profile
}

// SeedTopic creates an active beginner topic. Returns a filled domain.Topic.
func SeedTopic(t *testing.T, pool *pgxpool.Pool) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:          uuid.New(),
		Title:       "Ordering Coffee " + suffix,
		Description: "Practice ordering at a café.",
		Category:    "daily-life",
		Difficulty:  domain.DifficultyBeginner,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, title, description, category, difficulty, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		topic.ID, topic.Title, topic.Description, topic.Category,
		string(topic.Difficulty), topic.IsActive, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert: %v", err)
	}

	return topic
}

// SeedConversation creates an unended conversation for the given user and topic
// with a single opening AI exchange. Returns the filled domain.Conversation.
func SeedConversation(t *testing.T, pool *pgxpool.Pool, userID, topicID uuid.UUID) domain.Conversation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	conv := domain.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		TopicID:   topicID,
		StartedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO conversations (id, user_id, topic_id, started_at)
		 VALUES ($1, $2, $3, $4)`,
		conv.ID, conv.UserID, conv.TopicID, conv.StartedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConversation insert conversation: %v", err)
	}

	opening := SeedExchange(t, pool, conv.ID, domain.RoleAI, "Bonjour! Comment puis-je vous aider aujourd'hui?", nil, nil)
	conv.Exchanges = []domain.Exchange{opening}

	return conv
}

// SeedExchange appends one exchange row to a conversation. Returns the filled
// domain.Exchange.
func SeedExchange(t *testing.T, pool *pgxpool.Pool, conversationID uuid.UUID, role domain.ExchangeRole, message string, accuracy *float64, feedback *string) domain.Exchange {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ex := domain.Exchange{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           role,
		Message:        message,
		Timestamp:      now,
		Accuracy:       accuracy,
		Feedback:       feedback,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO conversation_exchanges (id, conversation_id, role, message, timestamp, accuracy, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ex.ID, ex.ConversationID, string(ex.Role), ex.Message, ex.Timestamp, ex.Accuracy, ex.Feedback,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExchange insert: %v", err)
	}

	return ex
}
