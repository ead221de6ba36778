package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/internal/server"
	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve calculator sessions over a JSON HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "addr",
				Usage:    "Address to listen on",
				Required: false,
				Value:    "127.0.0.1:8080",
				EnvVars:  []string{"FUELCALC_ADDR"},
			},
			&cli.DurationFlag{
				Name:     "session-ttl",
				Usage:    "Idle time after which a session and its history are dropped",
				Required: false,
				Value:    fuelcalc.DefaultSessionTTL,
				EnvVars:  []string{"FUELCALC_SESSION_TTL"},
			},
			&cli.IntFlag{
				Name:     "rate-limit",
				Usage:    "Requests per minute allowed per client IP, 0 to disable",
				Required: false,
				Value:    server.DefaultRequestsPerMinute,
				EnvVars:  []string{"FUELCALC_RATE_LIMIT"},
			},
			&cli.BoolFlag{
				Name:    "json-logs",
				Usage:   "Write request logs as JSON",
				EnvVars: []string{"FUELCALC_JSON_LOGS"},
			},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	httpLogger := httplog.NewLogger("fuelcalc", httplog.Options{
		JSON:            c.Bool("json-logs"),
		LogLevel:        level,
		Concise:         true,
		QuietDownPeriod: 10 * time.Second,
	})

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := fuelcalc.NewStorage(ctx, fuelcalc.MemoryDSN, httpLogger.Logger)
	if err != nil {
		return fmt.Errorf("error initializing storage: %w", err)
	}
	defer storage.Close()

	sessions := fuelcalc.NewSessions(storage, c.Duration("session-ttl"), httpLogger.Logger)
	srv := server.New(storage, sessions, httpLogger, server.Config{
		RequestsPerMinute: c.Int("rate-limit"),
		Lang:              c.String("lang"),
	})

	httpServer := &http.Server{
		Addr:              c.String("addr"),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		httpLogger.Info("Starting server", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	httpLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
