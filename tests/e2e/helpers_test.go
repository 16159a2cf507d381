//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parlezvous/parlezvous-backend/internal/adapter/postgres"
	convrepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/conversation"
	profilerepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/profile"
	"github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/token"
	topicrepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/topic"
	authpkg "github.com/parlezvous/parlezvous-backend/internal/auth"
	"github.com/parlezvous/parlezvous-backend/internal/config"
	authsvc "github.com/parlezvous/parlezvous-backend/internal/service/auth"
	convsvc "github.com/parlezvous/parlezvous-backend/internal/service/conversation"
	profilesvc "github.com/parlezvous/parlezvous-backend/internal/service/profile"
	topicsvc "github.com/parlezvous/parlezvous-backend/internal/service/topic"
	"github.com/parlezvous/parlezvous-backend/internal/transport/rest"
)

const (
	testOpeningMessage = "Bonjour! Comment puis-je vous aider aujourd'hui?"
	testReplyMessage   = "Je comprends. Pouvez-vous me dire plus?"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)
	topics := topicrepo.New(pool)
	conversations := convrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:       "e2e-test-secret-thirty-two-chars!!",
		JWTIssuer:       "parlezvous-e2e",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
		DefaultRole:     "student",
		BcryptCost:      bcrypt.MinCost,
	}
	convCfg := config.ConversationConfig{
		OpeningMessage:   testOpeningMessage,
		ReplyMessage:     testReplyMessage,
		MaxMessageLength: 2000,
		HistoryLimit:     50,
		DefaultQuota:     500,
		QuotaWindow:      720 * time.Hour,
	}

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, profiles, tokens, jwtMgr, authCfg, convCfg)
	topicService := topicsvc.NewService(logger, topics)
	profileService := profilesvc.NewService(logger, profiles)
	conversationService := convsvc.NewService(
		logger, conversations, topics, profiles, txm,
		convsvc.NewRandomScorer(),
		&convsvc.StaticResponder{Message: convCfg.ReplyMessage},
		convCfg,
	)

	router := rest.NewRouter(rest.Deps{
		Logger: logger,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: false,
			MaxAge:           3600,
		},
		Tokens:        authService,
		Auth:          rest.NewAuthHandler(authService, logger),
		Topics:        rest.NewTopicHandler(topicService, logger),
		Conversations: rest.NewConversationHandler(conversationService, logger),
		Profile:       rest.NewProfileHandler(profileService, logger),
		Health:        rest.NewHealthHandler(pool, "e2e"),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// postJSON performs a POST with an optional bearer token and decodes the
// JSON response body.
func (ts *testServer) postJSON(t *testing.T, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(body))

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	json.NewDecoder(resp.Body).Decode(&result) //nolint:errcheck
	return resp.StatusCode, result
}

// getJSON performs a GET with an optional bearer token.
func (ts *testServer) getJSON(t *testing.T, path, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	json.NewDecoder(resp.Body).Decode(&result) //nolint:errcheck
	return resp.StatusCode, result
}

// registerUser registers a fresh account and returns its access token and ID.
func registerUser(t *testing.T, ts *testServer) (token string, userID uuid.UUID) {
	t.Helper()

	email := "e2e-" + uuid.New().String()[:8] + "@example.com"
	status, result := ts.postJSON(t, "/api/v1/auth/register", map[string]string{
		"displayName": "E2E Student",
		"email":       email,
		"password":    "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", result)

	token, ok := result["accessToken"].(string)
	require.True(t, ok && token != "", "expected access token")

	user, ok := result["user"].(map[string]any)
	require.True(t, ok, "expected user object")
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)

	return token, userID
}

// adminToken registers a user, promotes it to admin directly in the
// database, and logs in again so the token carries the admin role claim.
func adminToken(t *testing.T, ts *testServer) string {
	t.Helper()

	email := "e2e-admin-" + uuid.New().String()[:8] + "@example.com"
	password := "correct-horse-battery"

	status, result := ts.postJSON(t, "/api/v1/auth/register", map[string]string{
		"displayName": "E2E Admin",
		"email":       email,
		"password":    password,
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", result)

	user := result["user"].(map[string]any)
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)

	_, err = ts.Pool.Exec(context.Background(),
		`UPDATE profiles SET role = 'admin', is_admin = TRUE WHERE id = $1`, userID)
	require.NoError(t, err)

	status, result = ts.postJSON(t, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", result)

	token, ok := result["accessToken"].(string)
	require.True(t, ok && token != "", "expected access token")
	return token
}
