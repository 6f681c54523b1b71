// Command ranktreed serves the players-ranking API over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ranktree/internal/slogpretty"
	"ranktree/ranking"
	"ranktree/server"
	"ranktree/signals"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	logger := slog.New(slogpretty.DefaultHandler)

	svc := ranking.New()
	srv := server.New(svc,
		server.WithAddr(*addr),
		server.DefaultOptions(),
	)

	httpServer := &http.Server{
		Addr:    srv.Addr(),
		Handler: srv,
	}

	done := signals.SetupHandler()
	go func() {
		<-done
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
		}
	}()

	logger.Info("listening", slog.String("addr", httpServer.Addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
