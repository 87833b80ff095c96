package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/osshack/leaderboard/internal/handlers"
	"github.com/osshack/leaderboard/internal/middleware"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/config"
	"github.com/osshack/leaderboard/pkg/database"
	"github.com/osshack/leaderboard/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if config.AppConfig.Webhook.Secret == "" {
		logger.Warn("GITHUB_WEBHOOK_SECRET is not set, webhook signatures will not be verified")
	}

	// Initialize dependencies
	contributorRepo := repositories.NewContributorRepository(database.DB)
	issueRepo := repositories.NewIssueRepository(database.DB)
	pullRequestRepo := repositories.NewPullRequestRepository(database.DB)
	activityRepo := repositories.NewActivityRepository(database.DB)
	cacheRepo := repositories.NewLeaderboardCacheRepository(database.DB)

	githubService := services.NewGitHubService()
	scoreService := services.NewScoreService(contributorRepo)
	contributorService := services.NewContributorService(contributorRepo, activityRepo)
	activityService := services.NewActivityService(activityRepo)
	leaderboardService := services.NewLeaderboardService(contributorRepo, cacheRepo)
	webhookService := services.NewWebhookService(scoreService, issueRepo, pullRequestRepo, activityRepo, githubService)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Setup routes
	setupRoutes(router, githubService, contributorService, activityService, leaderboardService, webhookService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	githubService *services.GitHubService,
	contributorService *services.ContributorService,
	activityService *services.ActivityService,
	leaderboardService *services.LeaderboardService,
	webhookService *services.WebhookService,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(githubService, contributorService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	activityHandler := handlers.NewActivityHandler(activityService)
	contributorHandler := handlers.NewContributorHandler(contributorService)

	// Liveness
	router.GET("/", healthHandler.Index)

	api := router.Group("/api/v1")
	{
		// Auth routes
		api.GET("/auth/github", authHandler.GitHubLogin)
		api.GET("/auth/github/callback", authHandler.GitHubCallback)
		api.GET("/auth/verify", authHandler.Verify)

		// Webhook ingestion
		api.POST("/webhook/github", webhookHandler.HandleGitHub)

		// Leaderboards and activity feed
		api.GET("/leaderboard", leaderboardHandler.GetAllLeaderboards)
		api.GET("/leaderboard/:category", leaderboardHandler.GetLeaderboard)
		api.GET("/leaderboard/:category/export", leaderboardHandler.ExportLeaderboard)
		api.GET("/activities", activityHandler.GetActivities)

		// Contributors
		api.POST("/register", contributorHandler.Register)
		api.GET("/user/:username", contributorHandler.GetContributor)
	}
}
