package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"contentHub/cmd/app"
	"contentHub/internal/config"
	"contentHub/internal/database"
	"contentHub/internal/httpserver"
	"contentHub/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "contenthub",
		Usage: "Content management API",
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("application failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Port to listen on, overrides SERVER_PORT",
				EnvVars: []string{"SERVER_PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if c.IsSet("port") {
				cfg.ServerPort = c.Int("port")
			}

			logg := logger.New(cfg.LogLevel, cfg.LogFormat)
			ctx := logger.WithLogger(c.Context, logg)

			application, err := app.New(ctx, cfg, logg)
			if err != nil {
				return err
			}
			defer application.Close()

			logg.Info().Str("database", cfg.DB.DbNAME).Str("storage", cfg.Storage.Driver).Msg("starting")
			return httpserver.Serve(ctx, fmt.Sprintf(":%d", cfg.ServerPort), application.Handler)
		},
	}
}

func migrateCmd() *cli.Command {
	run := func(up bool) cli.ActionFunc {
		return func(c *cli.Context) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logg := logger.New(cfg.LogLevel, cfg.LogFormat)
			return database.RunMigrations(cfg.DB, logg, up)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or revert database migrations",
		Subcommands: []*cli.Command{
			{Name: "up", Usage: "Apply all pending migrations", Action: run(true)},
			{Name: "down", Usage: "Revert all migrations", Action: run(false)},
		},
	}
}
