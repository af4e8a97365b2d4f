// cmd/marketing/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"fairlinks/internal/config"
	"fairlinks/internal/marketing"
	"fairlinks/internal/telemetry"
	"fairlinks/pkg/eventstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var handler slog.Handler
	level := cfg.Log.SlogLevel()
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, "fairlinks-marketing", cfg.Telemetry)
	if err != nil {
		logger.Error("telemetry setup error", slog.Any("error", err))
		os.Exit(1)
	}
	defer shutdownTracing(context.Background())

	db, err := sql.Open("postgres", cfg.Psql.Addr)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	es := eventstore.NewEventStore(db)
	aggregateID := uuid.NewSHA1(cfg.Course.ID, []byte("marketing"))
	svc := marketing.NewService(es, aggregateID, cfg.Course.BaselineBookings, cfg.Course.BaselineRevenue)
	h := marketing.NewHandler(svc, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: h.Router(),
	}

	go func() {
		logger.Info("marketing service listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
