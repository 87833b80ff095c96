package repositories

import (
	"database/sql"

	"github.com/osshack/leaderboard/internal/models"
)

type LeaderboardCacheRepository struct {
	db *sql.DB
}

func NewLeaderboardCacheRepository(db *sql.DB) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		db: db,
	}
}

// Upsert stores a serialized leaderboard snapshot for a category
func (r *LeaderboardCacheRepository) Upsert(category, data string) error {
	query := `
		INSERT INTO leaderboard_cache (category, data)
		VALUES (?, ?)
		ON CONFLICT(category) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.Exec(query, category, data)
	return err
}

// GetByCategory retrieves the stored snapshot for a category
func (r *LeaderboardCacheRepository) GetByCategory(category string) (*models.LeaderboardCache, error) {
	query := `
		SELECT id, category, data, updated_at
		FROM leaderboard_cache WHERE category = ?
	`

	var cache models.LeaderboardCache
	err := r.db.QueryRow(query, category).Scan(
		&cache.ID,
		&cache.Category,
		&cache.Data,
		&cache.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &cache, nil
}
