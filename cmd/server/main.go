package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ebnn/backend/internal/config"
	"github.com/ebnn/backend/internal/handler"
	"github.com/ebnn/backend/internal/logging"
	"github.com/ebnn/backend/internal/mail"
	"github.com/ebnn/backend/internal/repository"
	"github.com/ebnn/backend/internal/service"
	"github.com/ebnn/backend/pkg/resend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(os.Stdout, "INFO")
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Missing provider credentials do not stop the server; requests that need
	// them fail with a configuration error instead.
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY is not set; contact and subscribe will fail")
	}
	resendClient := resend.NewClient(cfg.ResendAPIKey, resend.WithBaseURL(cfg.ResendBaseURL))
	sender := mail.NewResendSender(resendClient)
	messages := mail.NewMessages(mail.Identity{
		ContactFrom: cfg.ContactFrom,
		AckFrom:     cfg.AckFrom,
		WelcomeFrom: cfg.WelcomeFrom,
		AdminTo:     cfg.AdminEmail,
		OwnerName:   cfg.OwnerName,
		SiteName:    cfg.SiteName,
		SiteURL:     cfg.SiteURL,
		LogoURL:     cfg.LogoURL,
	})

	subscribers, db, closeStore := newSubscriberStore(ctx, cfg, resendClient)
	defer closeStore()

	rateLimiter := handler.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	go rateLimiter.Run(ctx)

	router := handler.NewRouter(handler.Deps{
		Contact:       service.NewContactService(sender, messages, cfg.MaxMessageLength),
		Subscriptions: service.NewSubscriptionService(subscribers, sender, messages),
		DB:            db,
		FrontendURL:   cfg.FrontendURL,
		RateLimiter:   rateLimiter,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "subscriber_backend", cfg.SubscriberBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newSubscriberStore builds the duplicate-detection backend selected by
// SUBSCRIBER_BACKEND. db is nil when the backend has nothing to ping.
func newSubscriberStore(ctx context.Context, cfg *config.Config, client resend.Client) (repository.SubscriberRepository, repository.DB, func()) {
	noop := func() {}

	switch cfg.SubscriberBackend {
	case config.BackendAudience:
		if cfg.ResendAudienceID == "" {
			slog.Warn("RESEND_AUDIENCE_ID is not set; subscribe will fail")
		}
		return repository.NewAudienceSubscriberRepository(client, cfg.ResendAudienceID), nil, noop

	case config.BackendRedis:
		if cfg.RedisAddr == "" {
			slog.Warn("REDIS_ADDR is not set; subscribe will fail")
			return repository.NewRedisSubscriberRepository(nil, cfg.RedisSubscribersKey), nil, noop
		}
		rdb := repository.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		repo := repository.NewRedisSubscriberRepository(rdb, cfg.RedisSubscribersKey)
		return repo, repo, func() {
			if err := rdb.Close(); err != nil {
				slog.Error("redis close failed", "error", err)
			}
		}

	case config.BackendMemory:
		slog.Warn("using in-memory subscriber store; subscribers are lost on restart")
		repo := repository.NewMemorySubscriberRepository()
		return repo, repo, noop

	default:
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			// An unset or malformed DATABASE_URL surfaces per request.
			slog.Warn("database pool unavailable; subscribe will fail", "error", err)
			return repository.NewPgSubscriberRepository(nil), nil, noop
		}
		repo := repository.NewPgSubscriberRepository(pool)
		return repo, repo, pool.Close
	}
}
