package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/config"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router          *gin.Engine
	db              *sql.DB
	contributorRepo *repositories.ContributorRepository
	issueRepo       *repositories.IssueRepository
}

type stubLabelFetcher struct {
	labels []string
	err    error
}

func (s *stubLabelFetcher) GetIssueLabels(repoFullName string, issueNumber int) ([]string, error) {
	return s.labels, s.err
}

func setupTestEnv(t *testing.T, fetcher services.IssueLabelFetcher) *testEnv {
	return setupTestEnvWithConfig(t, fetcher, &config.Config{})
}

func setupTestEnvWithConfig(t *testing.T, fetcher services.IssueLabelFetcher, cfg *config.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = cfg

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../migrations/001_initial_schema.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	contributorRepo := repositories.NewContributorRepository(db)
	issueRepo := repositories.NewIssueRepository(db)
	pullRequestRepo := repositories.NewPullRequestRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	cacheRepo := repositories.NewLeaderboardCacheRepository(db)

	scoreService := services.NewScoreService(contributorRepo)
	contributorService := services.NewContributorService(contributorRepo, activityRepo)
	activityService := services.NewActivityService(activityRepo)
	leaderboardService := services.NewLeaderboardService(contributorRepo, cacheRepo)
	webhookService := services.NewWebhookService(scoreService, issueRepo, pullRequestRepo, activityRepo, fetcher)

	authHandler := NewAuthHandler(services.NewGitHubService(), contributorService)
	webhookHandler := NewWebhookHandler(webhookService)
	leaderboardHandler := NewLeaderboardHandler(leaderboardService)
	activityHandler := NewActivityHandler(activityService)
	contributorHandler := NewContributorHandler(contributorService)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/auth/github", authHandler.GitHubLogin)
		api.GET("/auth/github/callback", authHandler.GitHubCallback)
		api.GET("/auth/verify", authHandler.Verify)
		api.POST("/webhook/github", webhookHandler.HandleGitHub)
		api.GET("/leaderboard", leaderboardHandler.GetAllLeaderboards)
		api.GET("/leaderboard/:category", leaderboardHandler.GetLeaderboard)
		api.GET("/leaderboard/:category/export", leaderboardHandler.ExportLeaderboard)
		api.GET("/activities", activityHandler.GetActivities)
		api.POST("/register", contributorHandler.Register)
		api.GET("/user/:username", contributorHandler.GetContributor)
	}

	return &testEnv{
		router:          router,
		db:              db,
		contributorRepo: contributorRepo,
		issueRepo:       issueRepo,
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
