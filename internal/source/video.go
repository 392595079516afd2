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

// videoPayload matches the video platform search API response.
type videoPayload struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

// Video adapts the video platform search API. apiKey may be empty, in which
// case requests go out unauthenticated and the platform's quota rules apply.
type Video struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewVideo creates the adapter.
func NewVideo(baseURL, apiKey string, client *http.Client) *Video {
	return &Video{baseURL: baseURL, apiKey: apiKey, client: client}
}

func (v *Video) Name() models.Source { return models.SourceVideo }

func (v *Video) Fetch(ctx context.Context, query string, _ auth.Snapshot) ([]*models.Result, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", "10")
	params.Set("q", query)
	if v.apiKey != "" {
		params.Set("key", v.apiKey)
	}
	endpoint := v.baseURL + "/search?" + params.Encode()
	var payload videoPayload
	if err := getJSON(ctx, v.client, endpoint, "", &payload); err != nil {
		return nil, err
	}

	results := make([]*models.Result, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Snippet.Title == "" {
			continue
		}
		results = append(results, &models.Result{
			ID:         uuid.NewString(),
			Title:      item.Snippet.Title,
			Snippet:    utils.Truncate(item.Snippet.Description, 300),
			Link:       "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Source:     models.SourceVideo,
			Categories: category.Categorize(item.Snippet.Title, item.Snippet.Description, false),
		})
	}
	return results, nil
}
