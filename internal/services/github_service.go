package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/osshack/leaderboard/pkg/config"
	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

type GitHubService struct {
	oauthConfig *oauth2.Config
	apiToken    string
}

func NewGitHubService() *GitHubService {
	oauthConfig := &oauth2.Config{
		ClientID:     config.AppConfig.GitHub.ClientID,
		ClientSecret: config.AppConfig.GitHub.ClientSecret,
		RedirectURL:  config.AppConfig.GitHub.RedirectURI,
		Scopes: []string{
			"user:email", // Access to user's email addresses
		},
		Endpoint: oauthgithub.Endpoint,
	}

	return &GitHubService{
		oauthConfig: oauthConfig,
		apiToken:    config.AppConfig.GitHub.APIToken,
	}
}

// IsOAuthConfigured reports whether OAuth client credentials are present
func (s *GitHubService) IsOAuthConfigured() bool {
	return s.oauthConfig.ClientID != ""
}

// GetAuthURL returns the GitHub OAuth authorization URL
func (s *GitHubService) GetAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an authorization code for an access token
func (s *GitHubService) ExchangeCodeForToken(code string) (*oauth2.Token, error) {
	ctx := context.Background()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetUser retrieves the authenticated user's profile using an OAuth token
func (s *GitHubService) GetUser(token *oauth2.Token) (*github.User, error) {
	ctx := context.Background()
	client := github.NewClient(s.oauthConfig.Client(ctx, token))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	return user, nil
}

// GetPrimaryEmail retrieves the user's primary email address, which may not
// be present on the public profile
func (s *GitHubService) GetPrimaryEmail(token *oauth2.Token) (*string, error) {
	ctx := context.Background()
	client := github.NewClient(s.oauthConfig.Client(ctx, token))

	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list user emails: %w", err)
	}

	for _, email := range emails {
		if email.GetPrimary() {
			addr := email.GetEmail()
			return &addr, nil
		}
	}
	return nil, nil
}

// GetUserByAccessToken revalidates a bearer token against GitHub and returns
// the token owner's profile
func (s *GitHubService) GetUserByAccessToken(accessToken string) (*github.User, error) {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	return user, nil
}

// GetIssueLabels fetches the current label names of an issue. Requires the
// service API token; returns ErrNoAPIToken when it is not configured.
func (s *GitHubService) GetIssueLabels(repoFullName string, issueNumber int) ([]string, error) {
	if s.apiToken == "" {
		return nil, ErrNoAPIToken
	}

	owner, repo, found := strings.Cut(repoFullName, "/")
	if !found {
		return nil, fmt.Errorf("invalid repository name: %s", repoFullName)
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.apiToken})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	issue, _, err := client.Issues.Get(ctx, owner, repo, issueNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue %s#%d: %w", repoFullName, issueNumber, err)
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	return labels, nil
}
