package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/logger"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// GetLeaderboard returns the ranked board for one category
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	category := c.Param("category")

	entries, err := h.leaderboardService.GetLeaderboard(category)
	if errors.Is(err, services.ErrInvalidCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Use 'fullstack' or 'aiml'"})
		return
	}
	if err != nil {
		logger.WithField("category", category).WithError(err).Error("Failed to load leaderboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Success",
		"category":    category,
		"leaderboard": entries,
	})
}

// GetAllLeaderboards returns both category boards
func (h *LeaderboardHandler) GetAllLeaderboards(c *gin.Context) {
	boards, err := h.leaderboardService.GetAllLeaderboards()
	if err != nil {
		logger.WithError(err).Error("Failed to load leaderboards")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Success",
		"leaderboards": boards,
	})
}

// ExportLeaderboard streams one category board as an XLSX download
func (h *LeaderboardHandler) ExportLeaderboard(c *gin.Context) {
	category := c.Param("category")

	file, err := h.leaderboardService.ExportLeaderboard(category)
	if errors.Is(err, services.ErrInvalidCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Use 'fullstack' or 'aiml'"})
		return
	}
	if err != nil {
		logger.WithField("category", category).WithError(err).Error("Failed to export leaderboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export leaderboard"})
		return
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename(category)))
	if err := file.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write workbook")
	}
}
