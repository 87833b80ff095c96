package models

import (
	"time"
)

// PullRequest represents a merged pull request that earned points
type PullRequest struct {
	ID             int64      `json:"id" db:"id"`
	PRNumber       int        `json:"pr_number" db:"pr_number"`
	Repository     string     `json:"repository" db:"repository"`
	GithubUsername string     `json:"github_username" db:"github_username"`
	IssueNumber    *int       `json:"issue_number" db:"issue_number"`
	PointsEarned   int        `json:"points_earned" db:"points_earned"`
	Category       string     `json:"category" db:"category"`
	MergedAt       *time.Time `json:"merged_at" db:"merged_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}
