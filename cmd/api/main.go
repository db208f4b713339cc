package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hr-assistant/config"
	v1 "go-hr-assistant/internal/delivery/http/v1"
	"go-hr-assistant/internal/extract"
	"go-hr-assistant/internal/inference"
	"go-hr-assistant/internal/repository/sqlite"
	"go-hr-assistant/internal/session"
	"go-hr-assistant/internal/usecase"
	"go-hr-assistant/pkg/database"
	"go-hr-assistant/pkg/logger"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting HR assistant", "port", cfg.Port, "db", cfg.DBPath)

	// 3. Setup Database
	db, err := database.NewSQLiteConnection(cfg.DBPath)
	if err != nil {
		logger.Log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4. Setup Repository
	candidateRepo := sqlite.NewCandidateRepository(db)
	if err := candidateRepo.Init(context.Background()); err != nil {
		logger.Log.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// 5. Setup External Services
	extractor := extract.NewPDFExtractor()
	inferenceClient := inference.NewClient(inference.Options{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
		Timeout: cfg.LLMTimeout,
	})

	// 6. Setup UseCase
	validate := validator.New()
	assistantUC := usecase.NewAssistantUsecase(candidateRepo, extractor, inferenceClient, session.New(), validate)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AssistantUC: assistantUC,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
