package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Boettcher_Wiki/internal/config"
	"Boettcher_Wiki/internal/database/mongo"
	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/api"
	"Boettcher_Wiki/internal/wiki/auth"
	"Boettcher_Wiki/internal/wiki/seed"
	"Boettcher_Wiki/internal/wiki/service"
	"Boettcher_Wiki/internal/wiki/store"
	"Boettcher_Wiki/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	questionsCollection = "questions"
	answersCollection   = "answers"
	knowledgeCollection = "knowledge"
)

func main() {
	// Load configuration
	configPath := os.Getenv("WIKI_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logLevel, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.Init(logLevel)
	serviceLogger := logger.New("wiki_service", "", "")

	// Connect to MongoDB using the singleton GetClient
	mongoClient, err := mongo.GetClient(&cfg.Databases.MongoDB)
	if err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Fatal("Failed to connect to MongoDB")
	}
	db := mongoClient.Database(cfg.Databases.MongoDB.Database)
	serviceLogger.Info("Successfully connected to MongoDB")

	// Create stores
	questionStore := store.NewMongoQuestionStore(db, questionsCollection)
	answerStore := store.NewMongoAnswerStore(db, answersCollection)
	knowledgeStore := store.NewMongoKnowledgeStore(db, knowledgeCollection)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer startupCancel()

	// The unique answer index enforces at-most-one-answer under concurrent
	// writers. The service stays usable without it, so failure is logged only.
	if err := store.EnsureIndexes(startupCtx, db, answersCollection); err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Warn("Failed to create indexes")
	}

	// Seed the knowledge base on first startup
	inserted, err := seed.Run(startupCtx, knowledgeStore)
	if err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Fatal("Failed to seed knowledge base")
	}
	if inserted > 0 {
		serviceLogger.Info(fmt.Sprintf("Seeded knowledge base with %d sample entries", inserted))
	}

	// Wire dependencies (Store -> Service -> Handler)
	wikiService := service.NewService(questionStore, answerStore, knowledgeStore, serviceLogger)
	authenticator := auth.NewAuthenticator(&cfg.Auth, cfg.App.Name)
	apiHandler := api.NewHandler(wikiService, authenticator, serviceLogger, cfg.App.Name, mongo.HealthCheck)

	// Setup HTTP server
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.SetupRouter(apiHandler, authenticator, &cfg.Middleware)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	// Start server
	go func() {
		serviceLogger.Info("Starting HTTP server on " + srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Fatal("HTTP server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	serviceLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Fatal("Server forced to shutdown")
	}

	if err := mongo.Close(context.Background()); err != nil {
		serviceLogger.WithError(models.ErrorInfo{Message: err.Error()}).Error("Error disconnecting from MongoDB")
	}

	serviceLogger.Info("Server gracefully stopped")
}
