package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/evantbyrne/beerfest"
	"github.com/evantbyrne/beerfest/config"
	"github.com/evantbyrne/beerfest/fest"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	cfg   config.Config
	flags config.Config
)

var rootCmd = &cobra.Command{
	Use:           "beerfest",
	Short:         "Tasting event voting server",
	Long:          "Beerfest serves a voting page per tasting item and collects one score per visitor.",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flags)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flags.Port, "port", "p", 0, "server port (env "+config.EnvPort+")")
	rootCmd.PersistentFlags().StringVarP(&flags.DatabaseURL, "database", "d", "", "database URL or sqlite file (env "+config.EnvDatabaseURL+")")
	rootCmd.PersistentFlags().StringVarP(&flags.DatabaseType, "database-type", "t", "", "sqlite or postgres (env "+config.EnvDatabaseType+")")
	rootCmd.PersistentFlags().StringVar(&flags.SlugSalt, "slug-salt", "", "salt for item slugs (prefer env "+config.EnvSlugSalt+")")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(seedCmd)
}

// openStore connects to the configured database, registers it and returns an item store.
func openStore(ctx context.Context) (*sql.DB, *fest.ItemStore, error) {
	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database ping failed: %w", err)
	}
	beerfest.UseDatabase(db)
	beerfest.SetDialect(cfg.Dialect())

	store, err := fest.NewItemStore(nil, nil, cfg.SlugSalt)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	slog.Debug("database ready", "type", cfg.DatabaseType)
	return db, store, nil
}
