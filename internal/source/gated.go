package source

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/category"
	"github.com/hyperjump/atsumeru/internal/models"
	"github.com/hyperjump/atsumeru/pkg/utils"
)

const teaserSnippetLen = 120

// gatedPayload matches the login-gated resource search response.
type gatedPayload struct {
	Results []struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		URL   string `json:"url"`
	} `json:"results"`
}

// Gated adapts the login-gated resource. While unauthenticated it returns a
// single truncated teaser advertising the gated content; with a session token
// it performs the full fetch.
type Gated struct {
	baseURL string
	client  *http.Client
}

// NewGated creates the adapter.
func NewGated(baseURL string, client *http.Client) *Gated {
	return &Gated{baseURL: baseURL, client: client}
}

func (g *Gated) Name() models.Source { return models.SourceGated }

func (g *Gated) Fetch(ctx context.Context, query string, authState auth.Snapshot) ([]*models.Result, error) {
	if !authState.Authenticated {
		return []*models.Result{g.teaser(query)}, nil
	}

	endpoint := g.baseURL + "/api/search?q=" + url.QueryEscape(query)
	var payload gatedPayload
	if err := getJSON(ctx, g.client, endpoint, authState.Token, &payload); err != nil {
		return nil, err
	}

	results := make([]*models.Result, 0, len(payload.Results))
	for _, item := range payload.Results {
		results = append(results, &models.Result{
			ID:         uuid.NewString(),
			Title:      item.Title,
			Snippet:    utils.Truncate(item.Body, 300),
			Link:       item.URL,
			Source:     models.SourceGated,
			Categories: category.Categorize(item.Title, item.Body, false),
		})
	}
	return results, nil
}

// teaser is the fixed unauthenticated placeholder. Its snippet is truncated
// the way the full content would render, so the card looks like a real hit.
func (g *Gated) teaser(query string) *models.Result {
	body := "Training courses, certification paths, and member-only articles for \"" +
		query + "\" are available to logged-in users. Sign in to see the full content."
	return &models.Result{
		ID:         uuid.NewString(),
		Title:      "Member content: " + query,
		Snippet:    utils.Truncate(body, teaserSnippetLen),
		Link:       g.baseURL + "/login",
		Source:     models.SourceGated,
		Categories: category.Categorize(query, "", false),
		Teaser:     true,
	}
}
