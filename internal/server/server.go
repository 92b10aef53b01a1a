// Package server boots the application and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josbet/floreria/config"
	"github.com/josbet/floreria/internal/kernel"
	"github.com/josbet/floreria/pkg/cache"
	"github.com/josbet/floreria/pkg/database"
	"github.com/josbet/floreria/pkg/logger"
	"github.com/josbet/floreria/pkg/storage"
)

// Start boots config, logging, database, cache and storage, then serves
// until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	closeLogger, err := logger.Setup()
	if err != nil {
		return err
	}
	defer closeLogger()

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		// The memory driver stays active; sessions survive, just not
		// across processes.
		logger.Warn("cache connect failed, using in-process memory driver", "error", err)
	}

	storage.Connect()

	r, err := kernel.Build(db)
	if err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("floreria listening", "addr", addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
