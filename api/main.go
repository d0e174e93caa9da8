package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/warehousr/inventory-api/internal/config"
	"github.com/warehousr/inventory-api/internal/db"
	api "github.com/warehousr/inventory-api/internal/http"
	"github.com/warehousr/inventory-api/internal/http/handlers"
	rl "github.com/warehousr/inventory-api/internal/http/rate_limiter"
	"github.com/warehousr/inventory-api/internal/redissvc"
	"github.com/warehousr/inventory-api/internal/repo"
)

// @title Inventory API
// @version 1.0
// @description REST API for managing categories, products and stock transfers.
// @host localhost:8080
// @BasePath /
func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	db.EnsureSchema(ctx, database, log)

	var limiter rl.Limiter
	if cfg.RedisAddr != "" {
		rs, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warnf("redis unavailable, using in-memory rate limiting: %v", err)
		} else {
			defer rs.Close()
			limiter = rl.NewRedisLimiter(rs, cfg.RateLimitRPS, time.Second)
			log.Info("rate limiting backed by redis")
		}
	}
	if limiter == nil {
		mem := rl.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go mem.StartCleanupLoop()
		limiter = mem
	}
	api.SetRateLimiter(limiter)

	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database, log))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetTransferRepo(repo.NewPostgresTransferRepository(database, log))

	r := api.NewRouter()
	log.Infof("server running on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
