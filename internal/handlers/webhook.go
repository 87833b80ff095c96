package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v57/github"
	"github.com/osshack/leaderboard/internal/services"
	"github.com/osshack/leaderboard/pkg/config"
	"github.com/osshack/leaderboard/pkg/logger"
)

type WebhookHandler struct {
	webhookService *services.WebhookService
}

func NewWebhookHandler(webhookService *services.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// HandleGitHub ingests a GitHub webhook delivery. The payload signature is
// verified when a webhook secret is configured; without a secret the check
// is skipped. Unrecognized event types are acknowledged without action.
func (h *WebhookHandler) HandleGitHub(c *gin.Context) {
	secret := config.AppConfig.Webhook.Secret

	payload, err := github.ValidatePayload(c.Request, []byte(secret))
	if err != nil {
		if secret != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	eventType := github.WebHookType(c.Request)
	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		if !json.Valid(payload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
			return
		}
		// Event types we don't track still get a 200 so GitHub
		// doesn't mark the hook as failing.
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Webhook processed"})
		return
	}

	switch e := event.(type) {
	case *github.PullRequestEvent:
		err = h.webhookService.HandlePullRequestEvent(e)
	case *github.IssuesEvent:
		err = h.webhookService.HandleIssuesEvent(e)
	}

	if err != nil {
		logger.WithField("event_type", eventType).WithError(err).Error("Failed to process webhook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Webhook processed"})
}
