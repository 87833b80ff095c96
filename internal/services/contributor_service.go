package services

import (
	"errors"
	"fmt"

	"github.com/osshack/leaderboard/internal/models"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/pkg/logger"
)

type ContributorService struct {
	contributorRepo *repositories.ContributorRepository
	activityRepo    *repositories.ActivityRepository
}

func NewContributorService(contributorRepo *repositories.ContributorRepository, activityRepo *repositories.ActivityRepository) *ContributorService {
	return &ContributorService{
		contributorRepo: contributorRepo,
		activityRepo:    activityRepo,
	}
}

// Register inserts a brand-new contributor. Duplicate usernames are rejected,
// registration is never an upsert.
func (s *ContributorService) Register(contributor *models.Contributor) error {
	if contributor.GithubUsername == "" {
		return ErrMissingUsername
	}
	if contributor.Category == "" {
		contributor.Category = models.CategoryFullstack
	}
	if !models.IsValidCategory(contributor.Category) {
		return ErrInvalidCategory
	}

	if err := s.contributorRepo.Create(contributor); err != nil {
		return err
	}

	details := fmt.Sprintf("User registered for %s track", contributor.Category)
	activity := &models.Activity{
		Type:           models.ActivityUserRegistered,
		GithubUsername: &contributor.GithubUsername,
		Category:       &contributor.Category,
		Details:        &details,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		logger.WithError(err).Warn("Failed to log registration activity")
	}

	return nil
}

// GetByUsername retrieves a contributor by GitHub username
func (s *ContributorService) GetByUsername(username string) (*models.Contributor, error) {
	return s.contributorRepo.GetByUsername(username)
}

// UpsertFromOAuth persists the authenticated GitHub profile. New logins get
// a contributor row with the default track and zero counters; returning
// logins only refresh display name and email, score fields are untouched.
func (s *ContributorService) UpsertFromOAuth(username string, fullName, email *string) error {
	if username == "" {
		return ErrMissingUsername
	}

	_, err := s.contributorRepo.GetByUsername(username)
	if errors.Is(err, repositories.ErrNotFound) {
		contributor := &models.Contributor{
			GithubUsername: username,
			FullName:       fullName,
			Email:          email,
			Category:       models.CategoryFullstack,
		}
		if err := s.contributorRepo.Create(contributor); err != nil {
			return err
		}

		details := "New user logged in via GitHub OAuth"
		activity := &models.Activity{
			Type:           models.ActivityUserLogin,
			GithubUsername: &username,
			Details:        &details,
		}
		if err := s.activityRepo.Create(activity); err != nil {
			logger.WithError(err).Warn("Failed to log login activity")
		}
		return nil
	}
	if err != nil {
		return err
	}

	return s.contributorRepo.UpdateProfile(username, fullName, email)
}
