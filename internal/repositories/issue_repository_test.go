package repositories

import (
	"testing"

	"github.com/osshack/leaderboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueUpsert(t *testing.T) {
	repo := NewIssueRepository(setupTestDB(t))

	issue := &models.Issue{
		IssueNumber: 7,
		Repository:  "osshack/site",
		Title:       "Fix the header",
		Category:    models.CategoryFullstack,
		Points:      5,
		Status:      models.IssueStatusOpen,
	}
	require.NoError(t, repo.Upsert(issue))

	stored, err := repo.GetByNumber(7, "osshack/site")
	require.NoError(t, err)
	assert.Equal(t, "Fix the header", stored.Title)
	assert.Equal(t, 5, stored.Points)

	// Relabel: last write wins, the row is not duplicated
	issue.Points = 25
	issue.Category = models.CategoryAIML
	require.NoError(t, repo.Upsert(issue))

	updated, err := repo.GetByNumber(7, "osshack/site")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, updated.ID)
	assert.Equal(t, 25, updated.Points)
	assert.Equal(t, models.CategoryAIML, updated.Category)
}

func TestIssueSameNumberDifferentRepos(t *testing.T) {
	repo := NewIssueRepository(setupTestDB(t))

	require.NoError(t, repo.Upsert(&models.Issue{
		IssueNumber: 1, Repository: "osshack/site", Title: "A",
		Category: models.CategoryFullstack, Points: 5, Status: models.IssueStatusOpen,
	}))
	require.NoError(t, repo.Upsert(&models.Issue{
		IssueNumber: 1, Repository: "osshack/docs", Title: "B",
		Category: models.CategoryFullstack, Points: 10, Status: models.IssueStatusOpen,
	}))

	site, err := repo.GetByNumber(1, "osshack/site")
	require.NoError(t, err)
	docs, err := repo.GetByNumber(1, "osshack/docs")
	require.NoError(t, err)
	assert.Equal(t, "A", site.Title)
	assert.Equal(t, "B", docs.Title)
}

func TestIssueGetByNumber_NotFound(t *testing.T) {
	repo := NewIssueRepository(setupTestDB(t))

	_, err := repo.GetByNumber(404, "osshack/site")
	assert.ErrorIs(t, err, ErrNotFound)
}
