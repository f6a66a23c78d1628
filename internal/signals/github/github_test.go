package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"narrativeradar/internal/configs"
	"narrativeradar/internal/models"
)

func newTestSource(serverURL string, queries []string, limit int) *GitHubSource {
	src := NewGitHubSource(configs.GitHubConfig{
		Queries: queries,
		Limit:   limit,
	})
	src.baseURL = serverURL
	src.httpClient = resty.New()
	src.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return src
}

func searchBody(repos ...repo) []byte {
	b, _ := json.Marshal(searchResponse{Items: repos})
	return b
}

func TestFetchSignals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		assert.Equal(t, "solana pushed:>2026-08-16", r.URL.Query().Get("q"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))

		w.Write(searchBody(
			repo{FullName: "acme/jito-client", Description: "restaking client", StargazersCount: 500, Language: "Rust"},
			repo{FullName: "acme/archived-thing", Archived: true, StargazersCount: 900},
			repo{FullName: "acme/some-fork", Fork: true, StargazersCount: 800},
			repo{FullName: "acme/no-desc", StargazersCount: 10},
		))
	}))
	defer server.Close()

	src := newTestSource(server.URL, []string{"solana pushed:>%s"}, 40)

	sigs, err := src.FetchSignals(context.Background())
	require.NoError(t, err)
	require.Len(t, sigs, 2, "archived and forked repos are skipped")

	assert.Equal(t, models.SourceGitHub, sigs[0].Source)
	assert.Equal(t, "acme/jito-client", sigs[0].Title)
	assert.Equal(t, 500, sigs[0].Stars)
	assert.Equal(t, "Rust", sigs[0].Language)
	assert.Equal(t, "No description", sigs[1].Description)
}

func TestFetchSignalsDeduplicates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(searchBody(
			repo{FullName: "Acme/Jito-Client", StargazersCount: 500},
		))
	}))
	defer server.Close()

	// Two queries return the same repo with different casing.
	src := newTestSource(server.URL, []string{"solana pushed:>%s", "jito pushed:>%s"}, 40)

	sigs, err := src.FetchSignals(context.Background())
	require.NoError(t, err)
	assert.Len(t, sigs, 1)
}

func TestFetchSignalsSortsAndTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(searchBody(
			repo{FullName: "a/low", StargazersCount: 1},
			repo{FullName: "a/high", StargazersCount: 1000},
			repo{FullName: "a/mid", StargazersCount: 50},
		))
	}))
	defer server.Close()

	src := newTestSource(server.URL, []string{"solana pushed:>%s"}, 2)

	sigs, err := src.FetchSignals(context.Background())
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	assert.Equal(t, "a/high", sigs[0].Title)
	assert.Equal(t, "a/mid", sigs[1].Title)
}

func TestFetchSignalsAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write(searchBody())
	}))
	defer server.Close()

	src := newTestSource(server.URL, []string{"solana pushed:>%s"}, 40)
	src.token = "secret-token"

	_, err := src.FetchSignals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token secret-token", gotAuth)
}

func TestFetchSignalsRateLimitStopsQuerying(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write(searchBody(repo{FullName: "a/first", StargazersCount: 5}))
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	src := newTestSource(server.URL, []string{"q1 pushed:>%s", "q2 pushed:>%s", "q3 pushed:>%s"}, 40)

	sigs, err := src.FetchSignals(context.Background())
	require.NoError(t, err, "partial results survive a rate limit")
	assert.Len(t, sigs, 1)
	assert.Equal(t, 2, calls, "rate limit stops the remaining queries")
}

func TestFetchSignalsAllQueriesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := newTestSource(server.URL, []string{"solana pushed:>%s"}, 40)

	sigs, err := src.FetchSignals(context.Background())
	assert.Error(t, err)
	assert.Empty(t, sigs)
}
