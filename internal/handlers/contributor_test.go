package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequestBody(username string) string {
	return `{"github_username": "` + username + `", "full_name": "Alice Doe", "category": "aiml", "points": 10, "pr_count": 1, "issues_solved": 1}`
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterAndGetContributor(t *testing.T) {
	env := setupTestEnv(t, &stubLabelFetcher{})

	w := env.do(postJSON("/api/v1/register", registerRequestBody("alice")))
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(httptest.NewRequest(http.MethodGet, "/api/v1/user/alice", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		User struct {
			GithubUsername string  `json:"github_username"`
			FullName       *string `json:"full_name"`
			Category       string  `json:"category"`
			Points         int     `json:"points"`
			PRCount        int     `json:"pr_count"`
			IssuesSolved   int     `json:"issues_solved"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "alice", response.User.GithubUsername)
	require.NotNil(t, response.User.FullName)
	assert.Equal(t, "Alice Doe", *response.User.FullName)
	assert.Equal(t, "aiml", response.User.Category)
	assert.Equal(t, 10, response.User.Points)
	assert.Equal(t, 1, response.User.PRCount)
	assert.Equal(t, 1, response.User.IssuesSolved)
}

func TestRegister_Validation(t *testing.T) {
	env := setupTestEnv(t, &stubLabelFetcher{})

	t.Run("Duplicate username rejected", func(t *testing.T) {
		w := env.do(postJSON("/api/v1/register", registerRequestBody("bob")))
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(postJSON("/api/v1/register", registerRequestBody("bob")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing username rejected", func(t *testing.T) {
		w := env.do(postJSON("/api/v1/register", `{"full_name": "No Name"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown category rejected", func(t *testing.T) {
		w := env.do(postJSON("/api/v1/register", `{"github_username": "carol", "category": "devops"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid body rejected", func(t *testing.T) {
		w := env.do(postJSON("/api/v1/register", `{"github_username":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetContributor_NotFound(t *testing.T) {
	env := setupTestEnv(t, &stubLabelFetcher{})

	w := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/user/ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
