package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cherrera-dev/portfolio-api/internal/api"
	"github.com/cherrera-dev/portfolio-api/internal/auth"
	"github.com/cherrera-dev/portfolio-api/internal/chatbot"
	"github.com/cherrera-dev/portfolio-api/internal/config"
	"github.com/cherrera-dev/portfolio-api/internal/core"
	"github.com/cherrera-dev/portfolio-api/internal/projects"
	"github.com/cherrera-dev/portfolio-api/internal/store"
	"github.com/cherrera-dev/portfolio-api/internal/uploads"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the config file")
	hashPassword := flag.String("hash-password", "", "Print the bcrypt hash of the given password and exit")
	flag.Parse()

	// The hash helper needs no config or logger.
	if *hashPassword != "" {
		hash, err := auth.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", *configPath))
	}
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	}

	// Chat transcript store
	transcripts, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer transcripts.Close()

	// Collaborators
	projectStore := projects.NewStore(cfg.ProjectsFile, logger)
	uploadStore := uploads.NewStorage(cfg.UploadsDir)
	authService := auth.NewService(cfg.JWTSecret, cfg.AdminPasswordHash)

	// Chatbot pipeline and chat service
	responder := chatbot.NewResponderWithSource(rand.NewSource(time.Now().UnixNano()))
	chatService := core.NewChatService(transcripts, responder, logger)

	apiHandler := api.NewAPIHandler(chatService, projectStore, uploadStore, authService, logger)
	router := api.NewRouter(apiHandler, cfg.UploadsDir)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Could not listen", zap.String("addr", serverAddr), zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting gracefully")
}
