package services

import (
	"encoding/json"
	"fmt"

	"github.com/osshack/leaderboard/internal/models"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// allLeaderboardsLimit caps each category when both boards are fetched at once
const allLeaderboardsLimit = 100

type LeaderboardService struct {
	contributorRepo *repositories.ContributorRepository
	cacheRepo       *repositories.LeaderboardCacheRepository
}

func NewLeaderboardService(contributorRepo *repositories.ContributorRepository, cacheRepo *repositories.LeaderboardCacheRepository) *LeaderboardService {
	return &LeaderboardService{
		contributorRepo: contributorRepo,
		cacheRepo:       cacheRepo,
	}
}

// GetLeaderboard returns the ranked board for one category
func (s *LeaderboardService) GetLeaderboard(category string) ([]*models.LeaderboardEntry, error) {
	if !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.contributorRepo.GetLeaderboard(category, 0)
}

// GetAllLeaderboards returns both boards, each capped at 100 rows. A snapshot
// of each board is written to the cache table afterward; reads never consult
// the cache, it exists as materialized-view bookkeeping only.
func (s *LeaderboardService) GetAllLeaderboards() (map[string][]*models.LeaderboardEntry, error) {
	boards := make(map[string][]*models.LeaderboardEntry, len(models.Categories))

	for _, category := range models.Categories {
		entries, err := s.contributorRepo.GetLeaderboard(category, allLeaderboardsLimit)
		if err != nil {
			return nil, err
		}
		boards[category] = entries
		s.snapshotCache(category, entries)
	}

	return boards, nil
}

// snapshotCache stores a serialized board, best-effort
func (s *LeaderboardService) snapshotCache(category string, entries []*models.LeaderboardEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		logger.WithError(err).Warn("Failed to serialize leaderboard snapshot")
		return
	}
	if err := s.cacheRepo.Upsert(category, string(data)); err != nil {
		logger.WithField("category", category).WithError(err).Warn("Failed to store leaderboard snapshot")
	}
}

// ExportLeaderboard renders a category board as an Excel workbook
func (s *LeaderboardService) ExportLeaderboard(category string) (*excelize.File, error) {
	entries, err := s.GetLeaderboard(category)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Leaderboard"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Rank", "GitHub Username", "Full Name", "Category", "Points", "PRs Merged", "Issues Solved"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, entry := range entries {
		fullName := ""
		if entry.FullName != nil {
			fullName = *entry.FullName
		}
		values := []interface{}{
			entry.Rank,
			entry.GithubUsername,
			fullName,
			entry.Category,
			entry.Points,
			entry.PRCount,
			entry.IssuesSolved,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFilename builds the download name for an exported board
func ExportFilename(category string) string {
	return fmt.Sprintf("leaderboard-%s.xlsx", category)
}
