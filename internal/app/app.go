package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/parlezvous/parlezvous-backend/internal/adapter/postgres"
	convrepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/conversation"
	profilerepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/profile"
	tokenrepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/token"
	topicrepo "github.com/parlezvous/parlezvous-backend/internal/adapter/postgres/topic"
	jwtauth "github.com/parlezvous/parlezvous-backend/internal/auth"
	"github.com/parlezvous/parlezvous-backend/internal/config"
	authsvc "github.com/parlezvous/parlezvous-backend/internal/service/auth"
	convsvc "github.com/parlezvous/parlezvous-backend/internal/service/conversation"
	profilesvc "github.com/parlezvous/parlezvous-backend/internal/service/profile"
	topicsvc "github.com/parlezvous/parlezvous-backend/internal/service/topic"
	"github.com/parlezvous/parlezvous-backend/internal/transport/middleware"
	"github.com/parlezvous/parlezvous-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and the REST router, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	profiles := profilerepo.New(pool)
	tokens := tokenrepo.New(pool)
	topics := topicrepo.New(pool)
	conversations := convrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtMgr := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, profiles, tokens, jwtMgr, cfg.Auth, cfg.Conversation)
	topicService := topicsvc.NewService(logger, topics)
	profileService := profilesvc.NewService(logger, profiles)
	conversationService := convsvc.NewService(
		logger, conversations, topics, profiles, txm,
		convsvc.NewRandomScorer(),
		&convsvc.StaticResponder{Message: cfg.Conversation.ReplyMessage},
		cfg.Conversation,
	)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Deps{
		Logger:        logger,
		CORS:          cfg.CORS,
		Tokens:        authService,
		Limiter:       limiter,
		Auth:          rest.NewAuthHandler(authService, logger),
		Topics:        rest.NewTopicHandler(topicService, logger),
		Conversations: rest.NewConversationHandler(conversationService, logger),
		Profile:       rest.NewProfileHandler(profileService, logger),
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
