package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osshack/leaderboard/internal/models"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/logger"
)

type ContributorHandler struct {
	contributorService *services.ContributorService
}

func NewContributorHandler(contributorService *services.ContributorService) *ContributorHandler {
	return &ContributorHandler{
		contributorService: contributorService,
	}
}

type registerRequest struct {
	GithubUsername string  `json:"github_username" binding:"required"`
	FullName       *string `json:"full_name"`
	Email          *string `json:"email"`
	Category       string  `json:"category"`
	Points         int     `json:"points"`
	PRCount        int     `json:"pr_count"`
	IssuesSolved   int     `json:"issues_solved"`
}

// Register creates a new contributor. Duplicate usernames are rejected.
func (h *ContributorHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	contributor := &models.Contributor{
		GithubUsername: req.GithubUsername,
		FullName:       req.FullName,
		Email:          req.Email,
		Category:       req.Category,
		Points:         req.Points,
		PRCount:        req.PRCount,
		IssuesSolved:   req.IssuesSolved,
	}

	err := h.contributorService.Register(contributor)
	if errors.Is(err, repositories.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}
	if errors.Is(err, services.ErrInvalidCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Use 'fullstack' or 'aiml'"})
		return
	}
	if err != nil {
		logger.WithField("username", req.GithubUsername).WithError(err).Error("Failed to register user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    contributor,
	})
}

// GetContributor returns a contributor by GitHub username
func (h *ContributorHandler) GetContributor(c *gin.Context) {
	username := c.Param("username")

	contributor, err := h.contributorService.GetByUsername(username)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		logger.WithField("username", username).WithError(err).Error("Failed to load user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Success",
		"user":    contributor,
	})
}
