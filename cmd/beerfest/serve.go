package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evantbyrne/beerfest"
	"github.com/evantbyrne/beerfest/fest"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voting server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	db, store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.CreateSchema(cmd.Context()); err != nil {
		return err
	}

	logger := slog.Default()
	sessions := beerfest.NewSessions()
	app := &beerfest.App{Logger: logger}
	app.UseMiddleware(sessions.Middleware(), func(s *beerfest.Strand) error {
		r := s.Request()
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		return nil
	})
	fest.Register(app, store)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("listening", "addr", server.Addr, "database", cfg.DatabaseType)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server closed", "error", err)
		return err
	}
	logger.Info("server closed")
	return nil
}
