package app

import (
	"context"
	"fmt"
	"net/http"

	"contentHub/internal/auth"
	"contentHub/internal/config"
	"contentHub/internal/database"
	handlers "contentHub/internal/handler"
	"contentHub/internal/repository"
	"contentHub/internal/router"
	"contentHub/internal/service"
	"contentHub/internal/storage"

	"github.com/rs/zerolog"
)

// App holds the wired process. Close releases the database pool.
type App struct {
	DB      *database.DB
	Handler http.Handler
}

func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	authority, err := auth.NewAuthority(cfg.JWTSecretKey, cfg.TokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("token authority: %w", err)
	}

	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	store, err := storage.NewStorage(ctx, cfg, log)
	if err != nil {
		db.CloseDB()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	repo := repository.NewRepository(db.DB, auth.NewBcryptHasher(cfg.BcryptCost))
	services := service.NewService(repo, authority, store)
	h := handlers.NewHandlers(services, cfg)

	return &App{
		DB:      db,
		Handler: router.New(h, authority, cfg, log),
	}, nil
}

func (a *App) Close() error {
	return a.DB.CloseDB()
}
