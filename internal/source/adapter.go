// Package source defines the adapter contract for external content providers
// and its seven concrete implementations.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/models"
)

// Adapter fetches results from one external content provider. Implementations
// return an empty slice for ordinary "no results"; the aggregator treats
// returned errors as fail-open and drops the source's contribution.
type Adapter interface {
	Name() models.Source
	Fetch(ctx context.Context, query string, authState auth.Snapshot) ([]*models.Result, error)
}

// DefaultTimeout bounds one adapter's fetch within an aggregation call.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient returns the http.Client adapters share.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues an authorized GET and decodes the JSON body into v.
// A non-200 status is an error; callers degrade it to an empty contribution.
func getJSON(ctx context.Context, client *http.Client, url, token string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
