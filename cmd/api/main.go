package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bookshelf/bookshelf-api/internal/http/handlers"
	appmw "github.com/bookshelf/bookshelf-api/internal/http/middleware"
	"github.com/bookshelf/bookshelf-api/internal/mailer"
	"github.com/bookshelf/bookshelf-api/internal/notify"
	"github.com/bookshelf/bookshelf-api/internal/repository"
	"github.com/bookshelf/bookshelf-api/internal/service"
	"github.com/bookshelf/bookshelf-api/internal/session"
	"github.com/bookshelf/bookshelf-api/pkg/config"
	"github.com/bookshelf/bookshelf-api/pkg/database"
	"github.com/bookshelf/bookshelf-api/pkg/events"
	"github.com/bookshelf/bookshelf-api/pkg/logger"
	mw "github.com/bookshelf/bookshelf-api/pkg/middleware"
	"github.com/bookshelf/bookshelf-api/pkg/token"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	bookRepo := repository.NewBookRepository(pool)
	accessRepo := repository.NewAccessRepository(pool)

	// Expire stale rate-limit rows in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			removed, err := accessRepo.CleanupStale(ctx, 24*time.Hour)
			if err != nil {
				logger.Error("Access cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				logger.Info("Removed stale access records", "count", removed)
			}
		}
	}()

	// Sessions
	sessionStore := session.NewRedisStore(redisClient, cfg.Auth.SessionTTL)
	sessions := session.NewManager(sessionStore, cfg.Auth.SessionCookie, false)

	// Tokens
	tokens := token.New(cfg.Auth.TokenSecret)

	// Mail delivery, decoupled from the request lifecycle
	mail := buildMailer(cfg)
	var dispatcher notify.Dispatcher
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer bus.Close()

		worker := notify.NewWorker(mail, cfg.Server.BaseURL)
		if err := worker.Start(bus); err != nil {
			logger.Error("Failed to start notify worker", "error", err)
			os.Exit(1)
		}
		dispatcher = notify.NewBusDispatcher(bus)
	} else {
		dispatcher = notify.NewDirectDispatcher(mail, cfg.Server.BaseURL)
	}

	// Services
	authService := service.NewAuthService(userRepo, tokens, dispatcher, cfg)
	bookService := service.NewBookService(bookRepo)

	// Handlers and routes
	h := handlers.New(authService, bookService, sessions, tokens)
	limiter := appmw.NewRateLimiter(accessRepo, cfg.Auth.RateLimitInterval)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Mount("/", handlers.Router(h, sessions, limiter))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func buildMailer(cfg *config.Config) mailer.Service {
	if cfg.Email.DevMode {
		return mailer.NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	}
	return mailer.NewSMTPMailer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPFrom,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPass,
		cfg.Email.SMTPUseTLS,
	)
}
