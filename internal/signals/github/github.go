package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"narrativeradar/internal/configs"
	"narrativeradar/internal/models"
	"narrativeradar/internal/utils/request"
)

// GitHubSource fetches recently pushed Solana repositories via the GitHub
// search API. Works unauthenticated (rate limited); a token widens the rate
// limit.
type GitHubSource struct {
	baseURL    string
	token      string
	queries    []string
	lookback   time.Duration
	limit      int
	httpClient *resty.Client
	now        func() time.Time
}

func NewGitHubSource(cfg configs.GitHubConfig) *GitHubSource {
	lookbackDays := cfg.LookbackDays
	if lookbackDays <= 0 {
		lookbackDays = 14
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 40
	}
	return &GitHubSource{
		baseURL:    "https://api.github.com",
		token:      cfg.Token,
		queries:    cfg.Queries,
		lookback:   time.Duration(lookbackDays) * 24 * time.Hour,
		limit:      limit,
		httpClient: request.Request,
		now:        time.Now,
	}
}

func (g *GitHubSource) Name() string {
	return models.SourceGitHub
}

type repo struct {
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	PushedAt        time.Time `json:"pushed_at"`
	CreatedAt       time.Time `json:"created_at"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Language        string    `json:"language"`
	Topics          []string  `json:"topics"`
	Archived        bool      `json:"archived"`
	Fork            bool      `json:"fork"`
}

type searchResponse struct {
	Items []repo `json:"items"`
}

// FetchSignals runs every configured search query, deduplicates the results
// by repository name (case-insensitive) and returns the top repos by stars.
// A rate-limited response stops further queries but keeps what was fetched.
func (g *GitHubSource) FetchSignals(ctx context.Context) ([]models.Signal, error) {
	since := g.now().Add(-g.lookback).Format("2006-01-02")

	var (
		out     []models.Signal
		seen    = make(map[string]bool)
		lastErr error
	)

	for _, q := range g.queries {
		repos, err := g.search(ctx, fmt.Sprintf(q, since))
		if err != nil {
			lastErr = err
			if isRateLimited(err) {
				break
			}
			continue
		}

		for _, r := range repos {
			if r.Archived || r.Fork {
				continue
			}
			key := strings.ToLower(r.FullName)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, signalFromRepo(r))
		}
	}

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stars > out[j].Stars
	})
	if len(out) > g.limit {
		out = out[:g.limit]
	}

	return out, nil
}

func (g *GitHubSource) search(ctx context.Context, query string) ([]repo, error) {
	req := g.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetQueryParams(map[string]string{
			"q":        query,
			"sort":     "updated",
			"order":    "desc",
			"per_page": strconv.Itoa(g.limit),
		})
	if g.token != "" {
		req.SetHeader("Authorization", "token "+g.token)
	}

	resp, err := req.Get(g.baseURL + "/search/repositories")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var result searchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Items, nil
}

func signalFromRepo(r repo) models.Signal {
	desc := r.Description
	if desc == "" {
		desc = "No description"
	}
	return models.Signal{
		Source:      models.SourceGitHub,
		Title:       r.FullName,
		Description: desc,
		URL:         r.HTMLURL,
		Timestamp:   r.PushedAt,
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
		Language:    r.Language,
		Topics:      r.Topics,
		Metadata: map[string]string{
			"created_at":  r.CreatedAt.Format(time.RFC3339),
			"open_issues": strconv.Itoa(r.OpenIssuesCount),
		},
	}
}

func isRateLimited(err error) bool {
	return strings.Contains(err.Error(), "403")
}
