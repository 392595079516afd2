package source

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/category"
	"github.com/hyperjump/atsumeru/internal/models"
)

// portalPayload is the search response shape shared by the documentation,
// community, devsite, and blog portals.
type portalPayload struct {
	Results []struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
		URL     string `json:"url"`
	} `json:"results"`
}

// Portal adapts one of the portal-style search endpoints. The developerHint
// flag marks portals whose audience is developers, which biases the persona
// categorization of everything they return.
type Portal struct {
	source        models.Source
	baseURL       string
	developerHint bool
	client        *http.Client
}

// NewDocumentation adapts the product documentation search endpoint.
func NewDocumentation(baseURL string, client *http.Client) *Portal {
	return &Portal{source: models.SourceDocumentation, baseURL: baseURL, client: client}
}

// NewCommunity adapts the community forum search endpoint.
func NewCommunity(baseURL string, client *http.Client) *Portal {
	return &Portal{source: models.SourceCommunity, baseURL: baseURL, client: client}
}

// NewDevSite adapts the developer portal search endpoint.
func NewDevSite(baseURL string, client *http.Client) *Portal {
	return &Portal{source: models.SourceDevSite, baseURL: baseURL, developerHint: true, client: client}
}

// NewBlog adapts the blog search endpoint.
func NewBlog(baseURL string, client *http.Client) *Portal {
	return &Portal{source: models.SourceBlog, baseURL: baseURL, client: client}
}

func (p *Portal) Name() models.Source { return p.source }

func (p *Portal) Fetch(ctx context.Context, query string, _ auth.Snapshot) ([]*models.Result, error) {
	endpoint := p.baseURL + "/search?q=" + url.QueryEscape(query)
	var payload portalPayload
	if err := getJSON(ctx, p.client, endpoint, "", &payload); err != nil {
		return nil, err
	}

	results := make([]*models.Result, 0, len(payload.Results))
	for _, item := range payload.Results {
		if item.Title == "" {
			continue
		}
		results = append(results, &models.Result{
			ID:         uuid.NewString(),
			Title:      item.Title,
			Snippet:    item.Summary,
			Link:       item.URL,
			Source:     p.source,
			Categories: category.Categorize(item.Title, item.Summary, p.developerHint),
		})
	}
	return results, nil
}
