package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-career-mentor-backend/config"
	_ "go-career-mentor-backend/docs" // Important for Swagger
	"go-career-mentor-backend/internal/ai"
	v1 "go-career-mentor-backend/internal/delivery/http/v1"
	"go-career-mentor-backend/internal/jobfeed"
	"go-career-mentor-backend/internal/repository/postgres"
	"go-career-mentor-backend/internal/usecase"
	"go-career-mentor-backend/pkg/auth"
	"go-career-mentor-backend/pkg/database"
	"go-career-mentor-backend/pkg/email"
	"go-career-mentor-backend/pkg/logger"
	"go-career-mentor-backend/pkg/redis"
)

// @title           Career Mentor Backend API
// @version         1.0
// @description     Backend for the AI career mentor: job matching, profiles, resume analysis and mentor chat.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting career mentor backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	prefsRepo := postgres.NewPreferencesRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	chatRepo := postgres.NewChatRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	alertRepo := postgres.NewAlertRepository(dbPool)

	// 6. Setup External Services
	emailService := email.NewEmailService(email.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.SMTPFromEmail,
	})
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - job alert digests will be unavailable")
	}

	mentor := ai.NewMentor(cfg.OpenAIAPIKey, cfg.ChatModel)

	var feed usecase.JobFeed
	if adzuna := jobfeed.NewAdzunaClient(cfg.AdzunaAppID, cfg.AdzunaAPIKey, cfg.AdzunaCountry); adzuna != nil {
		feed = adzuna
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, auth.DefaultTTL)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	prefsUC := usecase.NewPreferencesUsecase(prefsRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, savedJobRepo, feed, 2)
	matchUC := usecase.NewMatchUsecase(userRepo, profileRepo, prefsRepo, jobRepo, matchRepo)
	chatUC := usecase.NewChatUsecase(chatRepo, mentor)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, profileUC, mentor)
	assistantUC := usecase.NewAssistantUsecase(profileRepo, jobRepo, mentor)
	alertUC := usecase.NewAlertUsecase(alertRepo, userRepo, profileRepo, prefsRepo, jobRepo, emailService)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		PrefsUC:     prefsUC,
		JobUC:       jobUC,
		MatchUC:     matchUC,
		ChatUC:      chatUC,
		ResumeUC:    resumeUC,
		AssistantUC: assistantUC,
		AlertUC:     alertUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 9. Start Server
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
