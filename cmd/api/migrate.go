package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded goose migrations for the configured driver",
		RunE:  runMigrate,
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "roll back the latest migration")
}

func runMigrate(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.migrate(migrateRollback); err != nil {
		return err
	}

	a.logger.Info("migrations finished",
		slog.String("driver", a.cfg.Database.Driver),
		slog.Bool("rollback", migrateRollback),
	)
	return nil
}
