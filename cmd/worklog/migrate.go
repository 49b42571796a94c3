package main

import (
	"github.com/joestump/worklog/internal/config"
	"github.com/joestump/worklog/internal/db"
	"github.com/joestump/worklog/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.NewLogger("migrate", cfg.Log.Level)
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			version, err := db.Version(database, cfg.DB.Driver)
			if err != nil {
				return err
			}
			log.Info().Int64("version", version).Str("driver", cfg.DB.Driver).Msg("migrations complete")
			return nil
		},
	}
}
