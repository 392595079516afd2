package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/category"
	"github.com/hyperjump/atsumeru/internal/models"
	"github.com/hyperjump/atsumeru/pkg/utils"
)

// githubPayload matches the public repository search API response.
type githubPayload struct {
	Items []struct {
		FullName    string `json:"full_name"`
		Description string `json:"description"`
		HTMLURL     string `json:"html_url"`
		Stars       int    `json:"stargazers_count"`
	} `json:"items"`
}

// GitHub adapts the public code-hosting search API.
type GitHub struct {
	baseURL string
	topic   string
	client  *http.Client
}

// NewGitHub creates the adapter. topic scopes the search to repositories
// related to the platform (e.g. "servicenow").
func NewGitHub(baseURL, topic string, client *http.Client) *GitHub {
	return &GitHub{baseURL: baseURL, topic: topic, client: client}
}

func (g *GitHub) Name() models.Source { return models.SourceGitHub }

func (g *GitHub) Fetch(ctx context.Context, query string, _ auth.Snapshot) ([]*models.Result, error) {
	q := query
	if g.topic != "" {
		q = query + " topic:" + g.topic
	}
	endpoint := g.baseURL + "/search/repositories?per_page=10&q=" + url.QueryEscape(q)
	var payload githubPayload
	if err := getJSON(ctx, g.client, endpoint, "", &payload); err != nil {
		return nil, err
	}

	results := make([]*models.Result, 0, len(payload.Items))
	for _, item := range payload.Items {
		snippet := item.Description
		if item.Stars > 0 {
			snippet = fmt.Sprintf("%s (★ %d)", utils.Truncate(item.Description, 200), item.Stars)
		}
		results = append(results, &models.Result{
			ID:         uuid.NewString(),
			Title:      item.FullName,
			Snippet:    snippet,
			Link:       item.HTMLURL,
			Source:     models.SourceGitHub,
			Categories: category.Categorize(item.FullName, item.Description, true),
		})
	}
	return results, nil
}
