package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/logger"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// GetActivities returns the recent activity feed, newest first
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	limitParam := c.DefaultQuery("limit", strconv.Itoa(services.DefaultActivityLimit))
	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	activities, err := h.activityService.Recent(limit)
	if err != nil {
		logger.WithError(err).Error("Failed to load activities")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Success",
		"activities": activities,
	})
}
