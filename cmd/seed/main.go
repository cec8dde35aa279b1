package main

import (
	"context"
	"flag"
	"time"

	"techshop/internal/cache"
	"techshop/internal/config"
	"techshop/internal/db"
	"techshop/internal/logger"
	"techshop/internal/repository"
	"techshop/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("techshop-seed", cfg.LogLevel)

	policy := flag.String("policy", cfg.SeedPolicy, "seed policy: reset or skip")
	flag.Parse()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, false, log); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	catalog := service.NewCatalogService(repository.NewProductRepository(gormDB), cacheClient, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := catalog.Seed(ctx, service.SeedPolicy(*policy))
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("inserted", count).Str("policy", *policy).Msg("seed completed")
}
