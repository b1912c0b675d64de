package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ebnn/backend/internal/config"
	"github.com/ebnn/backend/internal/logging"
	"github.com/ebnn/backend/internal/repository"
)

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Setup(os.Stdout, "INFO")
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		logging.Fatal("migrate failed", "error", err)
	}
}

// newRootCmd builds the migrate command. The --database-url flag defaults to
// the DATABASE_URL resolved by config.Load.
func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		dbURL   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Create the subscribers table if it does not exist",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			pool, err := repository.NewPool(ctx, dbURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := repository.EnsureSubscribersTable(ctx, pool); err != nil {
				return err
			}
			slog.Info("subscribers table ready")
			return nil
		},
	}

	cmd.Flags().StringVar(&dbURL, "database-url", cfg.DatabaseURL, "postgres connection string (default from DATABASE_URL or CONFIG_FILE)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline")
	return cmd
}
