package repositories

import (
	"database/sql"

	"github.com/osshack/leaderboard/internal/models"
)

type IssueRepository struct {
	db *sql.DB
}

func NewIssueRepository(db *sql.DB) *IssueRepository {
	return &IssueRepository{
		db: db,
	}
}

// Upsert stores an issue, overwriting classification on relabel events
func (r *IssueRepository) Upsert(issue *models.Issue) error {
	query := `
		INSERT INTO issues (issue_number, repository, title, category, points, status, assignee)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(issue_number, repository) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			points = excluded.points,
			status = excluded.status,
			assignee = excluded.assignee
	`

	_, err := r.db.Exec(query,
		issue.IssueNumber,
		issue.Repository,
		issue.Title,
		issue.Category,
		issue.Points,
		issue.Status,
		issue.Assignee,
	)
	return err
}

// GetByNumber retrieves an issue by its natural key
func (r *IssueRepository) GetByNumber(issueNumber int, repository string) (*models.Issue, error) {
	query := `
		SELECT id, issue_number, repository, title, category, points, status, assignee, created_at
		FROM issues WHERE issue_number = ? AND repository = ?
	`

	var issue models.Issue
	err := r.db.QueryRow(query, issueNumber, repository).Scan(
		&issue.ID,
		&issue.IssueNumber,
		&issue.Repository,
		&issue.Title,
		&issue.Category,
		&issue.Points,
		&issue.Status,
		&issue.Assignee,
		&issue.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &issue, nil
}
