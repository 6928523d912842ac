package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kawertyff-source/Simungboxing-128/internal/arena"
	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// runServer serves until SIGINT/SIGTERM, then stops every arena and flushes
// its profile before exiting.
func runServer(addr string, router *gin.Engine, arenas *arena.Manager) {
	srv := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Failed to start server", err, nil)
		}
	case sig := <-stop:
		logging.Info("Shutting down", logging.Fields{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Hijacked websocket connections are not tracked by Shutdown; stopping
	// the arenas closes them.
	arenas.Shutdown(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server shutdown failed", err, nil)
	}
}
