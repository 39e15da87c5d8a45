package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pickem-crew/pickem-dashboard/internal/config"
	"github.com/pickem-crew/pickem-dashboard/internal/logger"
	"github.com/pickem-crew/pickem-dashboard/internal/server"
	"github.com/pickem-crew/pickem-dashboard/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "pickem-dashboard",
		Short: "Pickem dashboard server",
		Long:  `Dashboard for the pickem prediction game: leaderboard, analytics and pick grading, served from the pickem backend API`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return err
	}

	serverLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	serverLogger.Info("starting dashboard server",
		slog.String("version", version.Get().Version),
		slog.String("environment", cfg.Environment),
	)
	serverLogger.Info("using pickem backend API", slog.String("base_url", cfg.APIBaseURL))

	srv, err := server.NewServer(cfg, serverLogger)
	if err != nil {
		serverLogger.Error("failed to create server", slog.String("error", err.Error()))
		return err
	}

	// Set up graceful shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		serverLogger.Error("dashboard server error", slog.String("error", err.Error()))
		return err
	}

	serverLogger.Info("dashboard server shutdown complete")
	return nil
}
