package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-spec-scraper/internal/store"
	"github.com/donaldgifford/phone-spec-scraper/pkg/logger"
)

func migrateCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Example: `  spec-scraper migrate --config config.yaml
  spec-scraper migrate --list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return listMigrations(cmd)
			}
			return runMigrate(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print embedded migrations without connecting")

	return cmd
}

func listMigrations(cmd *cobra.Command) error {
	names, err := store.MigrationNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := loadConfig(false)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := store.RunMigrations(ctx, pool); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}
