package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/book-tracker/cliparse"
	"github.com/danielhkuo/book-tracker/logging"
	"github.com/danielhkuo/book-tracker/router"
	"github.com/danielhkuo/book-tracker/store"
	"github.com/danielhkuo/book-tracker/views"
)

// shutdownTimeout bounds how long in-flight requests may drain
const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	if err := run(os.Args[1:]); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	// Parse templates
	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	// Connect to the record store
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	bookStore, err := store.Open(connectCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to %s store: %w", cfg.DatabaseType, err)
	}
	defer bookStore.Close()
	slog.Info("Store ready", "type", cfg.DatabaseType)

	// Create server
	server := &http.Server{
		Handler:           router.NewRouter(bookStore, renderer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", cfg.Port, err)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)

	slog.Info("Listening", "port", cfg.Port)
	return serve(server, ln, ctrlc)
}

// serve runs server on ln until stop fires, then drains in-flight requests
// for up to shutdownTimeout. It returns only after draining has finished.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	idle := make(chan struct{})
	go func() {
		defer close(idle)

		// Wait for Ctrl-C signal
		sig, ok := <-stop
		if !ok {
			return
		}
		slog.Info("Shutting down", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-idle
	slog.Info("Server closed")
	return nil
}
