package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/config"
	"github.com/osshack/leaderboard/pkg/logger"
)

type AuthHandler struct {
	githubService      *services.GitHubService
	contributorService *services.ContributorService
}

func NewAuthHandler(githubService *services.GitHubService, contributorService *services.ContributorService) *AuthHandler {
	return &AuthHandler{
		githubService:      githubService,
		contributorService: contributorService,
	}
}

// GitHubLogin redirects to the GitHub OAuth authorization page
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	if !h.githubService.IsOAuthConfigured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GitHub OAuth not configured"})
		return
	}

	state := uuid.NewString()
	c.Redirect(http.StatusTemporaryRedirect, h.githubService.GetAuthURL(state))
}

// GitHubCallback completes the OAuth exchange and redirects to the frontend
// with the access token and username
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	if !h.githubService.IsOAuthConfigured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GitHub OAuth not configured"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	token, err := h.githubService.ExchangeCodeForToken(code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get access token"})
		return
	}

	user, err := h.githubService.GetUser(token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to get user info"})
		return
	}

	email, err := h.githubService.GetPrimaryEmail(token)
	if err != nil {
		// The profile is enough to log in, email stays empty
		logger.WithError(err).Warn("Failed to fetch primary email")
	}

	var fullName *string
	if name := user.GetName(); name != "" {
		fullName = &name
	}

	if err := h.contributorService.UpsertFromOAuth(user.GetLogin(), fullName, email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store user"})
		return
	}

	redirectURL := fmt.Sprintf("%s/auth/callback?token=%s&username=%s",
		config.AppConfig.Frontend.BaseURL,
		url.QueryEscape(token.AccessToken),
		url.QueryEscape(user.GetLogin()),
	)
	c.Redirect(http.StatusFound, redirectURL)
}

// Verify revalidates a bearer token against GitHub and returns the local
// contributor it belongs to
func (h *AuthHandler) Verify(c *gin.Context) {
	authorization := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
		return
	}

	user, err := h.githubService.GetUserByAccessToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	contributor, err := h.contributorService.GetByUsername(user.GetLogin())
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found in database"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token valid",
		"user":    contributor,
	})
}
