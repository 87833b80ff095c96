package models

import (
	"time"
)

const (
	IssueStatusOpen   = "open"
	IssueStatusClosed = "closed"
)

// Issue represents a GitHub issue tracked for scoring
type Issue struct {
	ID          int64     `json:"id" db:"id"`
	IssueNumber int       `json:"issue_number" db:"issue_number"`
	Repository  string    `json:"repository" db:"repository"`
	Title       string    `json:"title" db:"title"`
	Category    string    `json:"category" db:"category"`
	Points      int       `json:"points" db:"points"`
	Status      string    `json:"status" db:"status"`
	Assignee    *string   `json:"assignee" db:"assignee"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
