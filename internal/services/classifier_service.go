package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/osshack/leaderboard/internal/models"
)

var digitsPattern = regexp.MustCompile(`\d+`)

// aimlKeywords mark an issue as belonging to the AI/ML track
var aimlKeywords = []string{
	"ai", "ml", "machine-learning", "artificial-intelligence",
	"data-science", "neural-network", "tensorflow", "pytorch",
	"nlp", "computer-vision", "deep-learning", "aiml",
}

// fullstackKeywords mark an issue as belonging to the full-stack track
var fullstackKeywords = []string{
	"frontend", "backend", "fullstack", "full-stack",
	"react", "node", "api", "database", "web-dev", "javascript", "typescript",
}

// PointsFromLabels derives a point value from issue labels. Labels like
// "10-points" contribute their embedded number, difficulty labels contribute
// a fixed value, and each matching label adds independently. An issue with
// no recognized label is worth 5 points.
func PointsFromLabels(labels []string) int {
	points := 0

	for _, label := range labels {
		name := strings.ToLower(label)

		if strings.Contains(name, "point") {
			if match := digitsPattern.FindString(name); match != "" {
				if value, err := strconv.Atoi(match); err == nil {
					points += value
				}
			}
		} else if strings.Contains(name, "easy") {
			points += 5
		} else if strings.Contains(name, "medium") {
			points += 10
		} else if strings.Contains(name, "hard") {
			points += 15
		} else if strings.Contains(name, "expert") {
			points += 25
		}
	}

	if points == 0 {
		return 5
	}
	return points
}

// CategoryFromLabels decides the contribution track for a set of labels.
// Labels are scanned in the given order and the first keyword match wins,
// with the AI/ML keyword set checked before the full-stack set per label.
// Unrecognized label sets default to fullstack.
func CategoryFromLabels(labels []string) string {
	for _, label := range labels {
		name := strings.ToLower(label)

		if containsAny(name, aimlKeywords) {
			return models.CategoryAIML
		}
		if containsAny(name, fullstackKeywords) {
			return models.CategoryFullstack
		}
	}

	return models.CategoryFullstack
}

func containsAny(name string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
