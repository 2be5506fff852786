package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/avurudu-games/cliparse"
	"github.com/danielhkuo/avurudu-games/db"
	"github.com/danielhkuo/avurudu-games/metrics"
	"github.com/danielhkuo/avurudu-games/middleware"
	"github.com/danielhkuo/avurudu-games/router"
	"github.com/danielhkuo/avurudu-games/store"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to the database
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	var opts []store.Option
	if cfg.SeedGames {
		opts = append(opts, store.WithStarterCatalog(db.StarterGames))
	}
	client := store.New(conn, cfg.DatabaseType, opts...)
	defer client.Close()

	// Create schema (tables) and seed the catalog
	if err := client.EnsureSchema(ctx); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	if cfg.UpgradeGames {
		added, err := client.UpgradeGames(ctx)
		if err != nil {
			slog.Error("games upgrade failed", "error", err)
			os.Exit(1)
		}
		slog.Info("games table upgraded", "added", added)
	}

	if cfg.MigrateFrom != "" {
		if err := migrateFrom(ctx, cfg.MigrateFrom, client); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		return
	}

	metrics.Register()

	// Create router
	mux := router.NewRouter(client, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.AllowedOrigins)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "origins", cfg.AllowedOrigins)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// migrateFrom copies every game and participant from a SQLite file into dst.
func migrateFrom(ctx context.Context, path string, dst *store.Client) error {
	conn, err := db.Open(ctx, db.SQLite, path)
	if err != nil {
		return err
	}
	src := store.New(conn, db.SQLite)
	defer src.Close()

	if err := src.RefreshCapabilities(ctx); err != nil {
		return err
	}

	report, err := store.CopyAll(ctx, src, dst)
	if err != nil {
		return err
	}
	slog.Info("migration finished",
		"from", path,
		"games", report.Games,
		"participants", report.Participants,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return nil
}
