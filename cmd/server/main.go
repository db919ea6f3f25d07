package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"manpower/internal/db"
	"manpower/internal/domain/audit"
	"manpower/internal/domain/masterdata"
	"manpower/internal/domain/payroll"
	"manpower/internal/domain/timesheet"
	"manpower/internal/platform/config"
	"manpower/internal/platform/jobs"
	"manpower/internal/platform/metrics"
	"manpower/internal/transport/http/api"
	masterdatahandler "manpower/internal/transport/http/handlers/masterdata"
	payrollhandler "manpower/internal/transport/http/handlers/payroll"
	timesheethandler "manpower/internal/transport/http/handlers/timesheet"
	"manpower/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	auditService := audit.New(pool)
	jobsService := jobs.New(pool)
	jobsService.Start(ctx)

	masterStore := masterdata.NewStore(pool)
	payrollStore := payroll.NewStore(pool)
	calcCfg := payroll.CalcConfig{
		OnshoreOTDivisor:  cfg.OnshoreOTDivisor,
		OffshoreOTDivisor: cfg.OffshoreOTDivisor,
		StandbyPayFactor:  cfg.StandbyPayFactor,
	}
	payrollService := payroll.NewService(payrollStore, masterStore, auditService, collector, calcCfg)

	timesheetStore := timesheet.NewStore(pool)
	timesheetService := timesheet.NewService(timesheetStore, auditService, func(batchID string) {
		jobsService.Enqueue(jobs.JobPayrollRun, batchID, func(ctx context.Context) (any, error) {
			return payrollService.GenerateRun(ctx, batchID, "")
		})
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

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

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		masterdatahandler.NewHandler(masterStore, cfg.DefaultCurrency).RegisterRoutes(r)
		timesheethandler.NewHandler(timesheetService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, jobsService).RegisterRoutes(r)
	})

	log.Printf("manpower server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
