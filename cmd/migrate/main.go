package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ignite/listserv/internal/config"
	"github.com/ignite/listserv/internal/pkg/distlock"
	"github.com/ignite/listserv/internal/repository/postgres"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadFromEnv(config.DefaultPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	listOnly := false
	for _, a := range os.Args[1:] {
		switch a {
		case "--list":
			listOnly = true
		default:
			log.Fatalf("unknown argument %q (usage: migrate [--list])", a)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.PoolOptions{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	if listOnly {
		applied, err := postgres.AppliedMigrations(ctx, db)
		if err != nil {
			log.Fatal(err)
		}
		for _, m := range applied {
			fmt.Printf("  %s  %s\n", m.Version, m.AppliedAt.Format(time.RFC3339))
		}
		fmt.Printf("Total: %d applied\n", len(applied))
		return
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("redis url: %v", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	lock := distlock.NewLock(redisClient, db, "listserv:migrate", 5*time.Minute)
	err = distlock.WithLock(ctx, lock, time.Second, func(ctx context.Context) error {
		applied, err := postgres.Migrate(ctx, db)
		for _, name := range applied {
			fmt.Printf("  %s ... OK\n", name)
		}
		if err != nil {
			return err
		}
		log.Printf("Done: %d applied", len(applied))
		return nil
	})
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("Migrations complete")
}
