package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcareer-backend/config"
	_ "vetcareer-backend/docs" // Important for Swagger
	v1 "vetcareer-backend/internal/delivery/http/v1"
	"vetcareer-backend/internal/repository/fixture"
	"vetcareer-backend/internal/repository/memory"
	"vetcareer-backend/internal/repository/session"
	"vetcareer-backend/internal/usecase"
	"vetcareer-backend/pkg/logger"
	"vetcareer-backend/pkg/redis"
	"vetcareer-backend/pkg/renderer"
	"vetcareer-backend/pkg/token"
)

// @title           Veteran Career Transition API
// @version         1.0
// @description     Backend for the veteran career transition platform using Clean Architecture.
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
	logger.Log.Info("Starting career transition backend", "port", cfg.Port)

	// 3. Setup Redis (session persistence; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, sessions held in memory only", "error", err)
	}
	defer redis.Close()

	// 4. Setup Repositories
	jobRepo := fixture.NewJobRepository()
	mentorRepo := fixture.NewMentorRepository()
	resourceRepo := fixture.NewResourceRepository()
	skillRepo := fixture.NewSkillRepository()
	sessionRepo := session.NewStore(cfg.SessionTTL)
	applicationRepo := memory.NewApplicationRepository()

	// 5. Setup UseCases
	authUC := usecase.NewAuthUsecase(sessionRepo, cfg.MockAuthLatency)
	jobUC := usecase.NewJobUsecase(jobRepo)
	mentorUC := usecase.NewMentorUsecase(mentorRepo)
	resourceUC := usecase.NewResourceUsecase(resourceRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, cfg.MockSkillLatency, cfg.MockSalaryLatency)
	resumeUC := usecase.NewResumeUsecase(renderer.NewChromedpRenderer(cfg.ChromePath))
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	healthUC := usecase.NewHealthUsecase()

	// 6. Rehydrate any session that survived a restart
	if identity, err := authUC.RestoreSession(context.Background()); err == nil && identity != nil {
		logger.Log.Info("Restored persisted session", "user_id", identity.ID, "role", identity.Role)
	}

	// 7. Setup Session Tokens
	signer := token.NewSigner(cfg.SessionJWTSecret, cfg.SessionTTL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		MentorUC:      mentorUC,
		ResourceUC:    resourceUC,
		SkillUC:       skillUC,
		ResumeUC:      resumeUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		SessionRepo:   sessionRepo,
		Signer:        signer,
		Config:        cfg,
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
