package repositories

import (
	"database/sql"

	"github.com/osshack/leaderboard/internal/models"
)

type PullRequestRepository struct {
	db *sql.DB
}

func NewPullRequestRepository(db *sql.DB) *PullRequestRepository {
	return &PullRequestRepository{
		db: db,
	}
}

// Upsert stores a merged pull request, keyed by (pr_number, repository)
func (r *PullRequestRepository) Upsert(pr *models.PullRequest) error {
	query := `
		INSERT INTO pull_requests (pr_number, repository, github_username, issue_number, points_earned, category, merged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pr_number, repository) DO UPDATE SET
			github_username = excluded.github_username,
			issue_number = excluded.issue_number,
			points_earned = excluded.points_earned,
			category = excluded.category,
			merged_at = excluded.merged_at
	`

	_, err := r.db.Exec(query,
		pr.PRNumber,
		pr.Repository,
		pr.GithubUsername,
		pr.IssueNumber,
		pr.PointsEarned,
		pr.Category,
		pr.MergedAt,
	)
	return err
}

// GetByNumber retrieves a pull request by its natural key
func (r *PullRequestRepository) GetByNumber(prNumber int, repository string) (*models.PullRequest, error) {
	query := `
		SELECT id, pr_number, repository, github_username, issue_number, points_earned, category, merged_at, created_at
		FROM pull_requests WHERE pr_number = ? AND repository = ?
	`

	var pr models.PullRequest
	err := r.db.QueryRow(query, prNumber, repository).Scan(
		&pr.ID,
		&pr.PRNumber,
		&pr.Repository,
		&pr.GithubUsername,
		&pr.IssueNumber,
		&pr.PointsEarned,
		&pr.Category,
		&pr.MergedAt,
		&pr.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &pr, nil
}
