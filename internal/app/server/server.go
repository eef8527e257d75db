package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrtracker/internal/domain/schedule"
	"hrtracker/internal/domain/staff"
	"hrtracker/internal/platform/config"
	"hrtracker/internal/platform/db"
	"hrtracker/internal/platform/metrics"
	"hrtracker/internal/transport/http/api"
	schedulehandler "hrtracker/internal/transport/http/handlers/schedule"
	staffhandler "hrtracker/internal/transport/http/handlers/staff"
	"hrtracker/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

// New connects to the database, applies migrations and seed data, and
// builds the HTTP router. Callers own the returned App and must Close it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	if err := db.Seed(ctx, pool, cfg); err != nil {
		pool.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	collector := metrics.New()

	scheduleStore := schedule.NewStore(pool)
	scheduleService := schedule.NewService(scheduleStore, cfg.DefaultAssignedBy)
	staffStore := staff.NewStore(pool)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.WriteJSON(w, http.StatusOK, collector.Snapshot())
		})
	}

	router.Route("/api", func(r chi.Router) {
		schedulehandler.NewHandler(scheduleService).RegisterRoutes(r)
		staffhandler.NewHandler(staffStore).RegisterRoutes(r)
	})

	return &App{
		Config:  cfg,
		DB:      pool,
		Router:  router,
		Metrics: collector,
	}, nil
}

func (a *App) Close() {
	a.DB.Close()
}

func Run() {
	cfg := config.Load()

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}
	defer app.Close()

	log.Printf("schedule server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
