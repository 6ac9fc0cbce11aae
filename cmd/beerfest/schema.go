package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.CreateSchema(cmd.Context()); err != nil {
			return err
		}
		slog.Info("database schema ready")
		return nil
	},
}
