package services

import (
	"github.com/osshack/leaderboard/internal/models"
	"github.com/osshack/leaderboard/internal/repositories"
)

// DefaultActivityLimit bounds the activity feed when the caller gives none
const DefaultActivityLimit = 50

type ActivityService struct {
	activityRepo *repositories.ActivityRepository
}

func NewActivityService(activityRepo *repositories.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// Recent returns the newest activity entries, most recent first
func (s *ActivityService) Recent(limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	return s.activityRepo.ListRecent(limit)
}
