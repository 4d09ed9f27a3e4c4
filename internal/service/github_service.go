package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/models"
)

const githubAPIBase = "https://api.github.com"

// GithubService proxies public repository listings from the GitHub API.
type GithubService struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewGithubService returns a new GithubService. An empty token means
// unauthenticated requests (subject to GitHub's lower rate limits).
func NewGithubService(token string) *GithubService {
	return &GithubService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: githubAPIBase,
		token:   token,
	}
}

// NewGithubServiceWithBase returns a GithubService pointed at a custom API
// base URL. Used by tests.
func NewGithubServiceWithBase(token, baseURL string) *GithubService {
	s := NewGithubService(token)
	s.baseURL = baseURL
	return s
}

// Repos returns the five most recently created public repositories for a
// GitHub username, as raw JSON from the upstream API.
func (s *GithubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:desc",
		s.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devconnect-api")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &models.AppError{
			Code:    models.CodeNotFound,
			Message: "No Github profile found",
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, models.NewInternalError(fmt.Errorf("github api returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !json.Valid(body) {
		return nil, models.NewInternalError(fmt.Errorf("github api returned invalid JSON"))
	}
	return json.RawMessage(body), nil
}
