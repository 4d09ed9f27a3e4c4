package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubService_Repos(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			assert.Equal(t, "created:desc", r.URL.Query().Get("sort"))
			assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name":"hello-world"}]`))
		}))
		defer srv.Close()

		svc := NewGithubServiceWithBase("gh-token", srv.URL)
		raw, err := svc.Repos(context.Background(), "octocat")
		require.NoError(t, err)

		var repos []struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(raw, &repos))
		require.Len(t, repos, 1)
		assert.Equal(t, "hello-world", repos[0].Name)
	})

	t.Run("no auth header without token", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		svc := NewGithubServiceWithBase("", srv.URL)
		_, err := svc.Repos(context.Background(), "octocat")
		require.NoError(t, err)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		svc := NewGithubServiceWithBase("", srv.URL)
		_, err := svc.Repos(context.Background(), "ghost")
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("upstream failure maps to internal", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		svc := NewGithubServiceWithBase("", srv.URL)
		_, err := svc.Repos(context.Background(), "octocat")
		assertErrorCode(t, err, models.CodeInternal)
	})

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		svc := NewGithubService("")
		_, err := svc.Repos(context.Background(), "")
		assertValidationError(t, err)
	})
}
