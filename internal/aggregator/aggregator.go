// Package aggregator orchestrates multi-source search: cache lookup, parallel
// adapter fan-out, curated merging, deduplication, and cache write-through.
package aggregator

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/cache"
	"github.com/hyperjump/atsumeru/internal/curated"
	"github.com/hyperjump/atsumeru/internal/models"
	"github.com/hyperjump/atsumeru/internal/source"
)

// Aggregator combines curated and adapter results for a query. It is the only
// writer of the result cache.
type Aggregator struct {
	adapters []source.Adapter
	curated  *curated.Set
	cache    cache.Cache
	auth     *auth.State
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates an aggregator. Adapter order is the response ordering contract:
// results appear grouped by adapter in the order given here. A logout purges
// the entire cache, since cached authenticated responses may embed gated
// content.
func New(
	adapters []source.Adapter,
	curatedSet *curated.Set,
	resultCache cache.Cache,
	authState *auth.State,
	timeout time.Duration,
	logger *zap.Logger,
) *Aggregator {
	if timeout <= 0 {
		timeout = source.DefaultTimeout
	}
	a := &Aggregator{
		adapters: adapters,
		curated:  curatedSet,
		cache:    resultCache,
		auth:     authState,
		timeout:  timeout,
		logger:   logger,
	}
	authState.OnLogout(resultCache.Clear)
	return a
}

// Auth returns the authentication state the aggregator is bound to.
func (a *Aggregator) Auth() *auth.State { return a.auth }

// Sources returns the adapter sources in declaration order.
func (a *Aggregator) Sources() []models.Source {
	sources := make([]models.Source, 0, len(a.adapters))
	for _, ad := range a.adapters {
		sources = append(sources, ad.Name())
	}
	return sources
}

// Search runs the aggregation for query. A blank query returns an empty
// response without touching the cache or any adapter. All adapter failures
// are fail-open: a broken source only loses its own contribution.
func (a *Aggregator) Search(ctx context.Context, query string) *models.SearchResponse {
	start := time.Now()
	resp := &models.SearchResponse{Query: query}
	if strings.TrimSpace(query) == "" {
		return resp
	}

	snapshot := a.auth.Snapshot()
	key := cache.Key(query, snapshot.Authenticated)

	if cached, ok := a.cache.Get(key); ok {
		resp.Results = cached
		resp.Total = len(cached)
		resp.NeedsLogin = needsLogin(cached)
		resp.CacheHit = true
		resp.QueryTime = time.Since(start).Milliseconds()
		return resp
	}

	merged := append(a.curated.Match(query), a.fanOut(ctx, query, snapshot)...)
	final := dedupe(merged)

	a.cache.Put(key, final)

	resp.Results = final
	resp.Total = len(final)
	resp.NeedsLogin = needsLogin(final)
	resp.QueryTime = time.Since(start).Milliseconds()
	return resp
}

// fanOut invokes every adapter concurrently and joins once all have settled.
// Each adapter runs under its own timeout; errors and timeouts degrade to an
// empty contribution. Per-adapter internal order is preserved, and adapters
// are concatenated in declaration order.
func (a *Aggregator) fanOut(ctx context.Context, query string, snapshot auth.Snapshot) []*models.Result {
	perAdapter := make([][]*models.Result, len(a.adapters))
	g, gctx := errgroup.WithContext(ctx)
	for i, adapter := range a.adapters {
		i, adapter := i, adapter
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(gctx, a.timeout)
			defer cancel()
			results, err := adapter.Fetch(fetchCtx, query, snapshot)
			if err != nil {
				a.logger.Warn("source fetch failed, dropping its contribution",
					zap.String("source", string(adapter.Name())),
					zap.Error(err),
				)
				return nil
			}
			perAdapter[i] = results
			return nil
		})
	}
	_ = g.Wait()

	var combined []*models.Result
	for _, results := range perAdapter {
		combined = append(combined, results...)
	}
	return combined
}

// dedupe removes duplicate titles case-insensitively, keeping the first
// occurrence. Curated results are merged ahead of adapter results, so a
// curated entry always wins over an adapter entry with the same title.
func dedupe(results []*models.Result) []*models.Result {
	seen := make(map[string]bool, len(results))
	final := make([]*models.Result, 0, len(results))
	for _, r := range results {
		title := strings.ToLower(strings.TrimSpace(r.Title))
		if seen[title] {
			continue
		}
		seen[title] = true
		final = append(final, r)
	}
	return final
}

func needsLogin(results []*models.Result) bool {
	for _, r := range results {
		if r.Teaser {
			return true
		}
	}
	return false
}
