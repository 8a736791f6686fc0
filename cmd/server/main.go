package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"betonfit/coach-app/internal/api"
	"betonfit/coach-app/internal/config"
	"betonfit/coach-app/internal/llm"
	"betonfit/coach-app/internal/repository/mongo"
	"betonfit/coach-app/internal/service"
	"betonfit/coach-app/internal/storage"
)

func main() {
	log.Println("Starting BetonFit Coach Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureIntakeIndexes(ctx, appDB.Collection("intakes"))
		mongo.EnsureProgrammeIndexes(ctx, appDB.Collection("programmes"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("No export bucket configured; programme export disabled.")
	}

	// --- Initialize Repositories ---
	intakeRepo := mongo.NewMongoIntakeRepository(appDB)
	programmeRepo := mongo.NewMongoProgrammeRepository(appDB)

	// --- Initialize Services ---
	llmGenerator := service.NewLLMGenerator(llm.NewClient(cfg.LLM))
	if llmGenerator == nil {
		log.Println("No LLM endpoint configured; llm engine disabled.")
	}
	plannerService := service.NewPlannerService(intakeRepo, programmeRepo, llmGenerator, cfg.Planner.DefaultSessions)
	shareService := service.NewShareService(cfg.Share.Secret, cfg.Share.TTL)
	var exportService service.ExportService
	if fileStorage != nil {
		exportService = service.NewExportService(plannerService, fileStorage)
	}

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.Auth.APIKey, plannerService, exportService, shareService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
