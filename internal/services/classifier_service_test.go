package services

import (
	"testing"

	"github.com/osshack/leaderboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPointsFromLabels(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []string
		expected int
	}{
		{
			name:     "Easy label",
			labels:   []string{"easy"},
			expected: 5,
		},
		{
			name:     "Medium label",
			labels:   []string{"medium"},
			expected: 10,
		},
		{
			name:     "Hard label",
			labels:   []string{"hard"},
			expected: 15,
		},
		{
			name:     "Expert label",
			labels:   []string{"expert"},
			expected: 25,
		},
		{
			name:     "Difficulty labels accumulate",
			labels:   []string{"hard", "medium"},
			expected: 25,
		},
		{
			name:     "No labels falls back to default",
			labels:   []string{},
			expected: 5,
		},
		{
			name:     "Unrecognized labels fall back to default",
			labels:   []string{"bug", "documentation"},
			expected: 5,
		},
		{
			name:     "Explicit point label",
			labels:   []string{"10-points"},
			expected: 10,
		},
		{
			name:     "Point label with trailing number",
			labels:   []string{"points-20"},
			expected: 20,
		},
		{
			name:     "Small explicit value is returned as-is",
			labels:   []string{"1-point"},
			expected: 1,
		},
		{
			name:     "Point label without a number counts as zero",
			labels:   []string{"points"},
			expected: 5,
		},
		{
			name:     "Point rule wins over difficulty words in the same label",
			labels:   []string{"easy-3-points"},
			expected: 3,
		},
		{
			name:     "Mixed point and difficulty labels",
			labels:   []string{"5-points", "hard"},
			expected: 20,
		},
		{
			name:     "Case insensitive",
			labels:   []string{"EASY", "Medium"},
			expected: 15,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PointsFromLabels(tc.labels))
		})
	}
}

func TestCategoryFromLabels(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []string
		expected string
	}{
		{
			name:     "No labels defaults to fullstack",
			labels:   []string{},
			expected: models.CategoryFullstack,
		},
		{
			name:     "Unrecognized labels default to fullstack",
			labels:   []string{"bug", "urgent"},
			expected: models.CategoryFullstack,
		},
		{
			name:     "AI keyword",
			labels:   []string{"ai"},
			expected: models.CategoryAIML,
		},
		{
			name:     "Fullstack keyword",
			labels:   []string{"backend"},
			expected: models.CategoryFullstack,
		},
		{
			name:     "First matching label wins across the set",
			labels:   []string{"frontend", "ai"},
			expected: models.CategoryFullstack,
		},
		{
			name:     "AI label first wins",
			labels:   []string{"ai", "frontend"},
			expected: models.CategoryAIML,
		},
		{
			name:     "Keyword as substring",
			labels:   []string{"tensorflow-model"},
			expected: models.CategoryAIML,
		},
		{
			name:     "Hyphenated fullstack keyword",
			labels:   []string{"full-stack"},
			expected: models.CategoryFullstack,
		},
		{
			name:     "AI/ML checked before fullstack within one label",
			labels:   []string{"nlp-api"},
			expected: models.CategoryAIML,
		},
		{
			name:     "Case insensitive",
			labels:   []string{"PyTorch"},
			expected: models.CategoryAIML,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategoryFromLabels(tc.labels))
		})
	}
}
