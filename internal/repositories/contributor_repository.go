package repositories

import (
	"database/sql"

	"github.com/osshack/leaderboard/internal/models"
)

type ContributorRepository struct {
	db *sql.DB
}

func NewContributorRepository(db *sql.DB) *ContributorRepository {
	return &ContributorRepository{
		db: db,
	}
}

// Create inserts a new contributor with caller-supplied counters
func (r *ContributorRepository) Create(contributor *models.Contributor) error {
	query := `
		INSERT INTO contributors (github_username, full_name, email, category, points, pr_count, issues_solved)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		contributor.GithubUsername,
		contributor.FullName,
		contributor.Email,
		contributor.Category,
		contributor.Points,
		contributor.PRCount,
		contributor.IssuesSolved,
	)
	return mapConstraintError(err)
}

// GetByUsername retrieves a contributor by GitHub username
func (r *ContributorRepository) GetByUsername(username string) (*models.Contributor, error) {
	query := `
		SELECT id, github_username, full_name, email, category, points, pr_count, issues_solved, created_at, updated_at
		FROM contributors WHERE github_username = ?
	`

	var contributor models.Contributor
	err := r.db.QueryRow(query, username).Scan(
		&contributor.ID,
		&contributor.GithubUsername,
		&contributor.FullName,
		&contributor.Email,
		&contributor.Category,
		&contributor.Points,
		&contributor.PRCount,
		&contributor.IssuesSolved,
		&contributor.CreatedAt,
		&contributor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &contributor, nil
}

// UpdateProfile updates display name and email only, never score fields
func (r *ContributorRepository) UpdateProfile(username string, fullName, email *string) error {
	query := `
		UPDATE contributors
		SET full_name = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE github_username = ?
	`

	_, err := r.db.Exec(query, fullName, email, username)
	return err
}

// UpsertScore applies a scored event to a contributor in a single statement.
// A missing row is created with the event's points and counters set to 1,
// an existing row is incremented in place. The category is overwritten with
// the latest classification either way.
func (r *ContributorRepository) UpsertScore(username string, points int, category string) error {
	query := `
		INSERT INTO contributors (github_username, category, points, pr_count, issues_solved)
		VALUES (?, ?, ?, 1, 1)
		ON CONFLICT(github_username) DO UPDATE SET
			points = points + excluded.points,
			pr_count = pr_count + 1,
			issues_solved = issues_solved + 1,
			category = excluded.category,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, username, category, points)
	return err
}

// GetLeaderboard returns ranked contributors for a category. Only rows with
// points are included. A limit of 0 means no limit.
func (r *ContributorRepository) GetLeaderboard(category string, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT github_username, full_name, category, points, pr_count, issues_solved,
		       ROW_NUMBER() OVER (ORDER BY points DESC, pr_count DESC) AS rank
		FROM contributors
		WHERE category = ? AND points > 0
		ORDER BY points DESC, pr_count DESC
	`

	args := []interface{}{category}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.LeaderboardEntry, 0)
	for rows.Next() {
		var entry models.LeaderboardEntry
		err := rows.Scan(
			&entry.GithubUsername,
			&entry.FullName,
			&entry.Category,
			&entry.Points,
			&entry.PRCount,
			&entry.IssuesSolved,
			&entry.Rank,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
