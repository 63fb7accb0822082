package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/finwell/finance-service/internal/cache"
	"github.com/finwell/finance-service/internal/config"
	"github.com/finwell/finance-service/internal/handler"
	"github.com/finwell/finance-service/internal/integrations/rates"
	"github.com/finwell/finance-service/internal/middleware"
	"github.com/finwell/finance-service/internal/report"
	"github.com/finwell/finance-service/internal/repository"
	"github.com/finwell/finance-service/internal/service"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Memoization cache: Redis when configured, in-process otherwise
	var resultCache cache.Cache
	if cfg.RedisAddr != "" {
		resultCache = cache.NewRedis(cfg.RedisAddr, cfg.CacheTTL)
		logger.Infof("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		resultCache = cache.NewMemory(cfg.CacheTTL)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, resultCache, logger, cfg)
	h := handler.NewHandler(svc)
	ratesClient := rates.NewClient(cfg, logger)
	sender := report.NewSender(cfg, logger)

	// Scheduled jobs: daily rates refresh, weekly health reports
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 6 * * *", func() {
		if _, err := ratesClient.GetRates(); err != nil {
			logger.Warnf("Daily rates refresh failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule rates refresh: %v", err)
	}
	if cfg.SMTPHost != "" {
		if _, err := scheduler.AddFunc(cfg.ReportSchedule, func() {
			svc.SendHealthReports(sender)
		}); err != nil {
			logger.Fatalf("Failed to schedule reports: %v", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/calculators/compound-interest", h.CompoundInterest).Methods("POST")
	r.HandleFunc("/calculators/loan-payment", h.LoanPayment).Methods("POST")
	r.HandleFunc("/simulations/quick", h.QuickSimulate).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/snapshot", h.SaveSnapshot).Methods("PUT")
	authRouter.HandleFunc("/snapshot", h.GetSnapshot).Methods("GET")
	authRouter.HandleFunc("/insights", h.GetInsights).Methods("GET")
	authRouter.HandleFunc("/health-score", h.GetHealth).Methods("GET")
	authRouter.HandleFunc("/simulations", h.Simulate).Methods("POST")
	authRouter.HandleFunc("/scenarios", h.CreateScenario).Methods("POST")
	authRouter.HandleFunc("/scenarios", h.ListScenarios).Methods("GET")
	// Daily reference rates endpoint
	r.HandleFunc("/rates", func(w http.ResponseWriter, r *http.Request) {
		all, err := ratesClient.GetRates()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get rates: %v", err), http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(all)
	}).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
