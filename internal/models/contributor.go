package models

import (
	"time"
)

const (
	CategoryFullstack = "fullstack"
	CategoryAIML      = "aiml"
)

// Categories lists the fixed contribution tracks
var Categories = []string{CategoryFullstack, CategoryAIML}

// IsValidCategory reports whether category is a known contribution track
func IsValidCategory(category string) bool {
	return category == CategoryFullstack || category == CategoryAIML
}

// Contributor represents a tracked GitHub participant
type Contributor struct {
	ID             int64     `json:"id" db:"id"`
	GithubUsername string    `json:"github_username" db:"github_username"`
	FullName       *string   `json:"full_name" db:"full_name"`
	Email          *string   `json:"email" db:"email"`
	Category       string    `json:"category" db:"category"`
	Points         int       `json:"points" db:"points"`
	PRCount        int       `json:"pr_count" db:"pr_count"`
	IssuesSolved   int       `json:"issues_solved" db:"issues_solved"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
