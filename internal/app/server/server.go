package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmops/internal/domain/auth"
	"farmops/internal/domain/hr"
	"farmops/internal/domain/ledger"
	"farmops/internal/domain/notifications"
	"farmops/internal/domain/payroll"
	"farmops/internal/domain/reports"
	"farmops/internal/domain/tasks"
	"farmops/internal/platform/config"
	"farmops/internal/platform/db"
	"farmops/internal/platform/email"
	"farmops/internal/platform/jobs"
	"farmops/internal/platform/metrics"
	authhandler "farmops/internal/transport/http/handlers/auth"
	hrhandler "farmops/internal/transport/http/handlers/hr"
	ledgerhandler "farmops/internal/transport/http/handlers/ledger"
	notificationshandler "farmops/internal/transport/http/handlers/notifications"
	payrollhandler "farmops/internal/transport/http/handlers/payroll"
	reportshandler "farmops/internal/transport/http/handlers/reports"
	taskshandler "farmops/internal/transport/http/handlers/tasks"
	"farmops/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler

	cancelJobs context.CancelFunc
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	authStore := auth.NewStore(pool)
	hrStore := hr.NewStore(pool)
	ledgerStore := ledger.NewStore(pool)
	payrollStore := payroll.NewStore(pool, ledgerStore)
	tasksStore := tasks.NewStore(pool)
	notificationsStore := notifications.NewStore(pool)
	reportsStore := reports.NewStore(pool)

	notifier := notifications.New(notificationsStore, email.New(cfg), cfg.EmailFrom, cfg.EmailEnabled)
	hrService := hr.NewService(hrStore)
	payrollService := payroll.NewService(payrollStore, notifier)
	tasksService := tasks.NewService(tasksStore, notifier)
	reportsService := reports.NewService(reportsStore, tasksService)

	jobsCtx, cancelJobs := context.WithCancel(context.Background())
	jobs.New(pool, cfg, payrollService).Start(jobsCtx)

	isProd := cfg.Environment == "production"

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(isProd))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

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

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		})
		hrhandler.NewHandler(hrService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, collector).RegisterRoutes(r)
		ledgerhandler.NewHandler(ledgerStore).RegisterRoutes(r)
		taskshandler.NewHandler(tasksService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService, collector).RegisterRoutes(r)
		notificationshandler.NewHandler(notifier).RegisterRoutes(r)
	})

	return &App{
		Config:     cfg,
		DB:         pool,
		Router:     router,
		cancelJobs: cancelJobs,
	}, nil
}

func (a *App) Close() {
	a.cancelJobs()
	a.DB.Close()
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("farmops server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
