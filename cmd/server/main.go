package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bookmanagement/internal/config"
	"bookmanagement/internal/logger"
	"bookmanagement/internal/metrics"
	"bookmanagement/internal/response"
	"bookmanagement/internal/server"
	"bookmanagement/internal/service"
	"bookmanagement/internal/storage"
	"bookmanagement/internal/storage/authors"
	"bookmanagement/internal/storage/books"
	"bookmanagement/internal/storage/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration: " + err.Error())
		os.Exit(1)
	}

	_, thisFile, _, _ := runtime.Caller(0)

	l, err := logger.SetupSLog(logger.Options{
		Level:        cfg.LogLevel,
		Format:       cfg.LogFormat,
		RootPath:     path.Dir(path.Dir(path.Dir(thisFile))),
		RequestIdKey: middleware.RequestIDKey,
	})
	if err != nil {
		slog.Error("Failed to set up logging: " + err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, l); err != nil {
		l.Error("aborting: " + err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, l *slog.Logger) error {
	pgCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	pgCfg.ConnConfig.Tracer = logger.NewPGXTracer(l)

	pg, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return fmt.Errorf("create postgres pool: %w", err)
	}
	defer pg.Close()

	if cfg.MigrateOnStart {
		if err = migrations.Migrate(ctx, pg, l); err != nil {
			return err
		}
	}

	ar := authors.NewPGXRepository(pg, l)
	br := books.NewPGXRepository(pg, l)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Handle("/metrics", metrics.Handler(reg))
	r.Mount("/", server.Handler(
		service.NewAuthors(ar, l),
		service.NewBooks(br, ar, storage.NewTransactor(pg, l), l),
		&response.Responder{DebugMode: cfg.DebugMode},
	))

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("Listening", slog.String("addr", cfg.BindAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
