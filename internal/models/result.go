package models

// Result represents a single retrieved or curated item.
type Result struct {
	// ID is unique within one aggregation response, not globally stable.
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Snippet    string     `json:"snippet"`
	Link       string     `json:"link"`
	Source     Source     `json:"source"`
	Categories []Category `json:"categories"`
	// Curated is true only for entries from the verified result set.
	Curated bool `json:"curated"`
	// Teaser marks the truncated gated-content placeholder shown while
	// unauthenticated; opening it should prompt the user to log in.
	Teaser bool `json:"teaser,omitempty"`
}

// Product returns the names of the result's product-kind categories.
func (r *Result) Product() []string {
	var names []string
	for _, c := range r.Categories {
		if c.Kind == KindProduct {
			names = append(names, c.Name)
		}
	}
	return names
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Query   string    `json:"query"`
	Results []*Result `json:"results"`
	Total   int       `json:"total"`
	// NeedsLogin is raised when the list contains a gated teaser, so the UI
	// can offer a login prompt.
	NeedsLogin bool  `json:"needs_login"`
	CacheHit   bool  `json:"cache_hit"`
	QueryTime  int64 `json:"query_time_ms"`
}

// SearchRequest is the body accepted by POST /api/v1/search.
type SearchRequest struct {
	Query string `json:"query"`
}
