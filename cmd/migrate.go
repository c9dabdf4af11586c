package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThanakornKaingam/LannaVegWedNew/database"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/config"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/repository/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(db *postgres.Connection) error {
					if err := database.Migrate(cmd.Context(), db.DB); err != nil {
						return err
					}
					return printVersion(cmd, db)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(db *postgres.Connection) error {
					if err := database.Rollback(cmd.Context(), db.DB); err != nil {
						return err
					}
					return printVersion(cmd, db)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print applied and pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(db *postgres.Connection) error {
					return database.Status(cmd.Context(), db.DB)
				})
			},
		},
	)

	return cmd
}

func printVersion(cmd *cobra.Command, db *postgres.Connection) error {
	v, err := database.Version(cmd.Context(), db.DB)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", v)
	return nil
}

// withDatabase opens the configured database without migrating it.
func withDatabase(ctx context.Context, fn func(db *postgres.Connection) error) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	return fn(db)
}
