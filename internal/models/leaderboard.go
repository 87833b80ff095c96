package models

import (
	"time"
)

// LeaderboardEntry is a ranked row of a category leaderboard
type LeaderboardEntry struct {
	GithubUsername string  `json:"github_username"`
	FullName       *string `json:"full_name"`
	Category       string  `json:"category"`
	Points         int     `json:"points"`
	PRCount        int     `json:"pr_count"`
	IssuesSolved   int     `json:"issues_solved"`
	Rank           int     `json:"rank"`
}

// LeaderboardCache holds a serialized leaderboard snapshot per category
type LeaderboardCache struct {
	ID        int64     `json:"id" db:"id"`
	Category  string    `json:"category" db:"category"`
	Data      string    `json:"data" db:"data"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
