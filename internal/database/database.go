package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"contentHub/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DB struct {
	*sqlx.DB
}

// ConnectDB opens the pool, retrying the first connection with a growing
// pause between attempts, and applies pending migrations.
func ConnectDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*DB, error) {
	log.Info().
		Str("host", cfg.DB.DbHOST).
		Str("dbname", cfg.DB.DbNAME).
		Msg("Connecting to PostgreSQL")

	db, err := connectWithRetry(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{db}

	if err := RunMigrations(cfg.DB, log, true); err != nil {
		dbStruct.CloseDB()
		return nil, err
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		dbStruct.CloseDB()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Info().Msg("Connected to PostgreSQL")
	return dbStruct, nil
}

func connectWithRetry(ctx context.Context, cfg config.DB, log zerolog.Logger) (*sqlx.DB, error) {
	attempts := cfg.Retries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
		if err == nil {
			return db, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		wait := cfg.RetryInterval * time.Duration(attempt)
		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", wait).Msg("Database connection failed")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", attempts, lastErr)
}

// RunMigrations applies (up) or reverts (down) the embedded migrations.
func RunMigrations(cfg config.DB, log zerolog.Logger, up bool) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL())
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if up {
		err = m.Up()
	} else {
		err = m.Down()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("Migrations: database is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Info().Bool("up", up).Msg("Migrations applied")
	return nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return errors.New("database connection is not initialized")
	}

	return db.PingContext(ctx)
}
