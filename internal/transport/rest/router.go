package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/config"
	"github.com/parlezvous/parlezvous-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token into a user identity and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// authRateLimit caps login/register attempts per IP per minute.
const authRateLimit = 10

// Deps bundles everything the router mounts.
type Deps struct {
	Logger        *slog.Logger
	CORS          config.CORSConfig
	Tokens        TokenValidator
	Limiter       *middleware.RateLimiter
	Auth          *AuthHandler
	Topics        *TopicHandler
	Conversations *ConversationHandler
	Profile       *ProfileHandler
	Health        *HealthHandler
}

// NewRouter mounts all REST routes behind the standard middleware chain.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	limited := func(h http.HandlerFunc) http.Handler {
		if deps.Limiter == nil {
			return h
		}
		return deps.Limiter.Limit(authRateLimit)(h)
	}

	mux.Handle("POST /api/v1/auth/register", limited(deps.Auth.Register))
	mux.Handle("POST /api/v1/auth/login", limited(deps.Auth.Login))
	mux.HandleFunc("POST /api/v1/auth/refresh", deps.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", deps.Auth.Logout)

	mux.HandleFunc("GET /api/v1/topics", deps.Topics.List)
	mux.HandleFunc("POST /api/v1/topics", deps.Topics.Create)
	mux.HandleFunc("GET /api/v1/topics/{id}", deps.Topics.Get)
	mux.HandleFunc("PATCH /api/v1/topics/{id}", deps.Topics.Update)
	mux.HandleFunc("DELETE /api/v1/topics/{id}", deps.Topics.Delete)

	mux.HandleFunc("POST /api/v1/conversations/start", deps.Conversations.Start)
	mux.HandleFunc("GET /api/v1/conversations/history", deps.Conversations.History)
	mux.HandleFunc("POST /api/v1/conversations/{id}/message", deps.Conversations.Send)
	mux.HandleFunc("POST /api/v1/conversations/{id}/exchanges", deps.Conversations.Append)
	mux.HandleFunc("POST /api/v1/conversations/{id}/close", deps.Conversations.Close)

	mux.HandleFunc("GET /api/v1/profile", deps.Profile.Get)
	mux.HandleFunc("PATCH /api/v1/profile", deps.Profile.Update)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Logger(deps.Logger),
		middleware.Auth(deps.Tokens),
	)(mux)
}
