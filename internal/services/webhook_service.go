package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/go-github/v57/github"
	"github.com/osshack/leaderboard/internal/models"
	"github.com/osshack/leaderboard/internal/repositories"
	"github.com/osshack/leaderboard/pkg/logger"
	"github.com/sirupsen/logrus"
)

// issueRefPattern matches closing keywords like "Closes #12" in PR bodies
var issueRefPattern = regexp.MustCompile(`(?i)(?:close[sd]?|fix(?:e[sd])?|resolve[sd]?)\s+#(\d+)`)

// IssueLabelFetcher resolves the current labels of an issue from the tracker
type IssueLabelFetcher interface {
	GetIssueLabels(repoFullName string, issueNumber int) ([]string, error)
}

type WebhookService struct {
	scoreService    *ScoreService
	issueRepo       *repositories.IssueRepository
	pullRequestRepo *repositories.PullRequestRepository
	activityRepo    *repositories.ActivityRepository
	labelFetcher    IssueLabelFetcher
}

func NewWebhookService(
	scoreService *ScoreService,
	issueRepo *repositories.IssueRepository,
	pullRequestRepo *repositories.PullRequestRepository,
	activityRepo *repositories.ActivityRepository,
	labelFetcher IssueLabelFetcher,
) *WebhookService {
	return &WebhookService{
		scoreService:    scoreService,
		issueRepo:       issueRepo,
		pullRequestRepo: pullRequestRepo,
		activityRepo:    activityRepo,
		labelFetcher:    labelFetcher,
	}
}

// ExtractIssueReference returns the first issue number referenced with a
// closing keyword in a PR body
func ExtractIssueReference(body string) (int, bool) {
	match := issueRefPattern.FindStringSubmatch(body)
	if match == nil {
		return 0, false
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return number, true
}

// HandlePullRequestEvent scores the PR author when a merged PR closes an
// issue. The event is ignored unless action is "closed" and the PR merged.
// When the issue labels cannot be fetched the event degrades to a no-op.
func (s *WebhookService) HandlePullRequestEvent(event *github.PullRequestEvent) error {
	pr := event.GetPullRequest()
	if event.GetAction() != "closed" || !pr.GetMerged() {
		return nil
	}

	repository := event.GetRepo().GetFullName()
	author := pr.GetUser().GetLogin()
	prNumber := pr.GetNumber()

	issueNumber, found := ExtractIssueReference(pr.GetBody())
	if !found {
		logger.WithFields(logrus.Fields{
			"repository": repository,
			"pr_number":  prNumber,
		}).Debug("Merged PR references no issue, nothing to score")
		return nil
	}

	labels, err := s.labelFetcher.GetIssueLabels(repository, issueNumber)
	if err != nil {
		// Scoring needs the issue labels; without them the merge is
		// acknowledged but produces no state change.
		logger.WithFields(logrus.Fields{
			"repository":   repository,
			"issue_number": issueNumber,
		}).WithError(err).Warn("Skipping score update, issue labels unavailable")
		return nil
	}

	points := PointsFromLabels(labels)
	category := CategoryFromLabels(labels)

	if err := s.scoreService.ApplyScore(author, points, category); err != nil {
		return fmt.Errorf("failed to apply score for %s: %w", author, err)
	}

	pullRequest := &models.PullRequest{
		PRNumber:       prNumber,
		Repository:     repository,
		GithubUsername: author,
		IssueNumber:    &issueNumber,
		PointsEarned:   points,
		Category:       category,
	}
	if mergedAt := pr.GetMergedAt(); !mergedAt.IsZero() {
		mergedTime := mergedAt.Time
		pullRequest.MergedAt = &mergedTime
	}
	if err := s.pullRequestRepo.Upsert(pullRequest); err != nil {
		return fmt.Errorf("failed to store pull request: %w", err)
	}

	details := fmt.Sprintf("Merged PR #%d solving issue #%d", prNumber, issueNumber)
	activity := &models.Activity{
		Type:           models.ActivityPRMerged,
		GithubUsername: &author,
		Repository:     &repository,
		IssueNumber:    &issueNumber,
		PRNumber:       &prNumber,
		Points:         &points,
		Category:       &category,
		Details:        &details,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"username": author,
		"points":   points,
		"category": category,
	}).Info("Scored merged pull request")

	return nil
}

// HandleIssuesEvent classifies and stores an issue when it is opened or
// relabeled. Label changes overwrite the previous classification.
func (s *WebhookService) HandleIssuesEvent(event *github.IssuesEvent) error {
	action := event.GetAction()
	if action != "opened" && action != "labeled" {
		return nil
	}

	issue := event.GetIssue()
	repository := event.GetRepo().GetFullName()

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	points := PointsFromLabels(labels)
	category := CategoryFromLabels(labels)

	record := &models.Issue{
		IssueNumber: issue.GetNumber(),
		Repository:  repository,
		Title:       issue.GetTitle(),
		Category:    category,
		Points:      points,
		Status:      models.IssueStatusOpen,
	}
	if assignee := issue.GetAssignee().GetLogin(); assignee != "" {
		record.Assignee = &assignee
	}
	if err := s.issueRepo.Upsert(record); err != nil {
		return fmt.Errorf("failed to store issue: %w", err)
	}

	issueNumber := issue.GetNumber()
	details := fmt.Sprintf("New %s issue opened: %s", category, issue.GetTitle())
	activity := &models.Activity{
		Type:        models.ActivityIssueOpened,
		Repository:  &repository,
		IssueNumber: &issueNumber,
		Points:      &points,
		Category:    &category,
		Details:     &details,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	return nil
}
