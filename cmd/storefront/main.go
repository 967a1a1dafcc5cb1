package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"Shoplinkado/internal/admin"
	"Shoplinkado/internal/catalog"
	"Shoplinkado/internal/config"
	"Shoplinkado/internal/httpapi"
	"Shoplinkado/pkg/kit"
)

const service = "storefront"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, sessions, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatal("store init failed", zap.Error(err))
	}

	if err := catalog.Seed(ctx, store); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	svc := admin.NewService(sessions, admin.NewTokenMaker(cfg.JWTSecret), cfg.AdminPassword)

	h := httpapi.NewHandler(
		&catalog.Server{Store: store, Log: log},
		&admin.Server{Svc: svc, Log: log},
		httpapi.Deps{
			Log:            log,
			Service:        service,
			Registry:       prometheus.NewRegistry(),
			MetricsEnabled: cfg.MetricsEnabled,
			MetricsToken:   cfg.MetricsToken,
		},
	)

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStores picks the Postgres adapters when a DSN is configured and the
// in-memory adapters otherwise.
func buildStores(ctx context.Context, cfg config.Config) (catalog.Store, admin.SessionStore, error) {
	if cfg.PostgresDSN == "" {
		return catalog.NewMemStore(), admin.NewMemStore(), nil
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}

	cat := catalog.NewPostgresStore(db)
	if err := cat.Migrate(ctx); err != nil {
		return nil, nil, err
	}

	sessions := admin.NewPostgresStore(db)
	if err := sessions.Migrate(ctx); err != nil {
		return nil, nil, err
	}

	return cat, sessions, nil
}
