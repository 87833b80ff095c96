package repositories

import (
	"database/sql"

	"github.com/osshack/leaderboard/internal/models"
)

type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// Create appends an activity entry. Rows are immutable once written.
func (r *ActivityRepository) Create(activity *models.Activity) error {
	query := `
		INSERT INTO activities (type, github_username, repository, issue_number, pr_number, points, category, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		activity.Type,
		activity.GithubUsername,
		activity.Repository,
		activity.IssueNumber,
		activity.PRNumber,
		activity.Points,
		activity.Category,
		activity.Details,
	)
	return err
}

// ListRecent returns the newest activity entries first
func (r *ActivityRepository) ListRecent(limit int) ([]*models.Activity, error) {
	query := `
		SELECT id, type, github_username, repository, issue_number, pr_number, points, category, details, created_at
		FROM activities
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*models.Activity, 0)
	for rows.Next() {
		var activity models.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Type,
			&activity.GithubUsername,
			&activity.Repository,
			&activity.IssueNumber,
			&activity.PRNumber,
			&activity.Points,
			&activity.Category,
			&activity.Details,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}

	return activities, rows.Err()
}
