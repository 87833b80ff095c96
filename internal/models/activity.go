package models

import (
	"time"
)

const (
	ActivityPRMerged       = "pr_merged"
	ActivityIssueOpened    = "issue_opened"
	ActivityUserLogin      = "user_login"
	ActivityUserRegistered = "user_registered"
)

// Activity is an append-only audit record for scoring-relevant events
type Activity struct {
	ID             int64     `json:"id" db:"id"`
	Type           string    `json:"type" db:"type"`
	GithubUsername *string   `json:"github_username" db:"github_username"`
	Repository     *string   `json:"repository" db:"repository"`
	IssueNumber    *int      `json:"issue_number" db:"issue_number"`
	PRNumber       *int      `json:"pr_number" db:"pr_number"`
	Points         *int      `json:"points" db:"points"`
	Category       *string   `json:"category" db:"category"`
	Details        *string   `json:"details" db:"details"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
