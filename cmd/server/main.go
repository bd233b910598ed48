package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"smart-hospital/internal/chatbot"
	"smart-hospital/internal/config"
	"smart-hospital/internal/consultation"
	"smart-hospital/internal/features"
	"smart-hospital/internal/hospital"
	"smart-hospital/internal/logger"
	"smart-hospital/internal/oracle"
	"smart-hospital/internal/report"
)

func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}
	logger.Configure(cfg.Log.Level)

	// 2. Infrastructure
	db, err := hospital.Open(cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to open database", "err", err)
	}
	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		logger.Info("waiting for database", "attempt", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logger.Fatal("could not connect to database", "err", err)
	}
	logger.Info("connected to database")

	m, err := migrate.New(hospital.MigrationsURL(cfg.Database.URL), cfg.Database.URL)
	if err != nil {
		logger.Fatal("migration init failed", "err", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Fatal("migration up failed", "err", err)
	}
	logger.Info("migrations applied")

	// 3. Model artifacts and clients. Without the schema there is
	// nothing to predict with, so a missing artifact is fatal.
	artifacts, err := oracle.LoadArtifacts(cfg.Oracle.Artifacts)
	if err != nil {
		logger.Fatal("failed to load model artifacts", "dir", cfg.Oracle.Artifacts, "err", err)
	}
	builder := features.NewBuilder(artifacts.Features)
	oracleClient := oracle.NewClient(cfg.Oracle.URL, artifacts)

	// 4. Services
	repo := hospital.NewRepository(db)
	recorder := consultation.NewPredictionRecorder(repo)

	mode := chatbot.ModeFull
	if cfg.Chat.Mode == "quick" {
		mode = chatbot.ModeQuick
	}
	engine := chatbot.NewEngine(mode, builder, oracleClient, recorder)

	consultSvc := consultation.NewService(engine, builder, oracleClient, recorder)
	consultHandler := consultation.NewHandler(consultSvc, report.NewService())
	hospitalHandler := hospital.NewHandler(repo)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for the frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		consultation.RegisterRoutes(r, consultHandler)
		hospital.RegisterRoutes(r, hospitalHandler)
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "mode", cfg.Chat.Mode)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
