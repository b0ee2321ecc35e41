// Seed drops and recreates the schema, then loads the sample catalog.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
	"github.com/ariefcatur/go-storefront-checkout/internal/config"
	"github.com/ariefcatur/go-storefront-checkout/internal/postgres"
	"github.com/ariefcatur/go-storefront-checkout/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Reset(ctx, db); err != nil {
		log.Fatal("reset schema", zap.Error(err))
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal("ensure schema", zap.Error(err))
	}

	n, err := seed.EnsureSeeded(ctx, &catalog.Repo{DB: db})
	if err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}
	log.Info("database reset and seeded", zap.Int("products", n))
}
