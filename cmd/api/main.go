package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/finapp-cl/finance-service/internal/analysis"
	"github.com/finapp-cl/finance-service/internal/cache"
	"github.com/finapp-cl/finance-service/internal/config"
	"github.com/finapp-cl/finance-service/internal/handler"
	"github.com/finapp-cl/finance-service/internal/integrations/indicators"
	"github.com/finapp-cl/finance-service/internal/middleware"
	"github.com/finapp-cl/finance-service/internal/repository"
	"github.com/finapp-cl/finance-service/internal/service"
	"github.com/finapp-cl/finance-service/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
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
	if err := godotenv.Load(); err != nil {
		logger.Debugf(".env file not found")
	}
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

	// Shared UF cache: Redis when configured, in-process otherwise
	var store cache.Repository
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(cfg.RedisAddr)
	} else {
		store = cache.NewMemory()
	}

	// Initialize layers
	ufClient := indicators.NewUFClient(cfg, logger, store)
	repo := repository.NewRepository(db)
	engine := analysis.NewEngine(logger)
	mailer := email.NewSender(cfg, logger)
	svc := service.NewService(repo, ufClient, engine, mailer, logger)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	// Public UF value endpoint
	r.HandleFunc("/indicators/uf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]float64{"uf": ufClient.Value()})
	}).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.Auth(cfg))
	authRouter.HandleFunc("/goals", h.ListGoals).Methods("GET")
	authRouter.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	authRouter.HandleFunc("/goals/{id}", h.GetGoal).Methods("GET")
	authRouter.HandleFunc("/goals/{id}", h.DeleteGoal).Methods("DELETE")

	// Scheduled jobs: warm the UF cache each morning, then send the alert digest
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 8 * * *", func() {
		ufClient.Value()
	}); err != nil {
		logger.Fatalf("Failed to schedule UF refresh: %v", err)
	}
	if _, err := scheduler.AddFunc("0 9 * * *", func() {
		if err := svc.SendAlertDigest(); err != nil {
			logger.Errorf("Alert digest failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule alert digest: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

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
