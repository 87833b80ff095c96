package services

import (
	"github.com/osshack/leaderboard/internal/repositories"
)

type ScoreService struct {
	contributorRepo *repositories.ContributorRepository
}

func NewScoreService(contributorRepo *repositories.ContributorRepository) *ScoreService {
	return &ScoreService{
		contributorRepo: contributorRepo,
	}
}

// ApplyScore credits a scored event to a contributor. The row is created on
// first sight; points accumulate, pr_count and issues_solved each advance by
// one, and the category is overwritten with the latest classification. The
// whole update is a single statement so concurrent events cannot lose
// increments.
func (s *ScoreService) ApplyScore(username string, points int, category string) error {
	if username == "" {
		return ErrMissingUsername
	}
	return s.contributorRepo.UpsertScore(username, points, category)
}
