package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weatherfav/internal/app"
	"weatherfav/internal/config"
	"weatherfav/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	serve := func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Load(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		log := logger.NewLogger(cfg.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := app.NewApp(ctx, cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("failed to initialize application")
			return err
		}
		return a.Run(ctx)
	}

	rootCmd := &cobra.Command{
		Use:           "weatherfav",
		Short:         "Weather favorites service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	cfg.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE:  serve,
	})
	rootCmd.AddCommand(newMigrateCmd(cfg))

	return rootCmd
}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	migrate := func(reset bool) func(cmd *cobra.Command, _ []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Load(); err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			log := logger.NewLogger(cfg.LogLevel)
			return app.Migrate(cmd.Context(), cfg, log, reset)
		}
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}
	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE:  migrate(false),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Drop all tables and recreate them",
			RunE:  migrate(true),
		},
	)
	return migrateCmd
}
