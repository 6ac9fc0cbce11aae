package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/evantbyrne/beerfest/fest"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Create items from a YAML file",
	Long:  "Create items from a YAML list of entries with an index and a name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open seed file: %w", err)
		}
		defer file.Close()

		db, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.CreateSchema(cmd.Context()); err != nil {
			return err
		}
		count, err := fest.Seed(cmd.Context(), store, file)
		if err != nil {
			return err
		}
		slog.Info("seeded items", "count", count, "file", args[0])
		return nil
	},
}
