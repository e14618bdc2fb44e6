package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ignite/listserv/internal/api"
	"github.com/ignite/listserv/internal/auth"
	"github.com/ignite/listserv/internal/config"
	"github.com/ignite/listserv/internal/pkg/distlock"
	"github.com/ignite/listserv/internal/pkg/logger"
	"github.com/ignite/listserv/internal/render"
	"github.com/ignite/listserv/internal/repository/postgres"
	"github.com/ignite/listserv/internal/service/mailing"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/subscriber"
	"github.com/ignite/listserv/internal/service/template"
	"github.com/ignite/listserv/internal/service/user"
	"github.com/redis/go-redis/v9"
)

// migrationLockKey serialises schema migrations across replicas.
const migrationLockKey = "listserv:migrate"

func extractHost(dsn string) string {
	at := strings.Index(dsn, "@")
	if at < 0 {
		return "(unknown)"
	}
	rest := dsn[at+1:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

func main() {
	cfg, err := config.LoadFromEnv(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.PoolOptions{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database at %s: %v", extractHost(cfg.Database.URL), err)
	}
	defer db.Close()
	logger.Info("database connected", "host", extractHost(cfg.Database.URL))

	// Redis is optional: it backs token revocation and the migration lock.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis unavailable, token revocation disabled", "error", err)
		} else {
			defer redisClient.Close()
			logger.Info("redis connected")
		}
	}

	if cfg.Database.MigrateOnStart() {
		if err := migrate(ctx, db, redisClient); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	// Auth
	hasher, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("Invalid bcrypt cost: %v", err)
	}
	tokens, err := auth.NewTokenService(cfg.Auth.SecretKey)
	if err != nil {
		log.Fatalf("Token service: %v", err)
	}

	// Services
	users := user.NewService(postgres.NewUserRepo(db), hasher)
	lists := mailinglist.NewService(postgres.NewMailingListRepo(db))
	templates := template.NewService(postgres.NewTemplateRepo(db), render.NewLiquid())

	var revoked auth.Revocations
	if redisClient != nil {
		revoked = auth.NewRedisRevocations(redisClient)
	}

	handlers := api.NewHandlers(api.Deps{
		Users:         users,
		MailingLists:  lists,
		Subscribers:   subscriber.NewService(postgres.NewSubscriberRepo(db), lists),
		Templates:     templates,
		Mailings:      mailing.NewService(postgres.NewMailingRepo(db), lists, templates),
		Tokens:        tokens,
		Authenticator: auth.NewAuthenticator(tokens, users, revoked),
	})
	server := api.NewServer(cfg.Server, handlers, api.NewHealthChecker(db, redisClient), cfg.CORS.AllowedOrigins)

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "addr", server.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// migrate applies pending migrations while holding the migration lock so
// concurrent replicas do not race on the schema.
func migrate(ctx context.Context, db *sql.DB, redisClient *redis.Client) error {
	lockCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	lock := distlock.NewLock(redisClient, db, migrationLockKey, 2*time.Minute)
	return distlock.WithLock(lockCtx, lock, time.Second, func(ctx context.Context) error {
		applied, err := postgres.Migrate(ctx, db)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			logger.Info("schema up to date")
			return nil
		}
		logger.Info("migrations applied", "versions", strings.Join(applied, ","))
		return nil
	})
}
