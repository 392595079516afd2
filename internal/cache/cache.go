// Package cache provides the in-memory TTL cache for aggregated search results.
package cache

import (
	"strings"

	"github.com/hyperjump/atsumeru/internal/models"
)

// Cache stores aggregated result lists keyed by normalized query and auth flag.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached results for key, or false when the key is absent
	// or its entry has expired.
	Get(key string) ([]*models.Result, bool)
	// Put stores results under key, stamped with the current time. Last write
	// wins for concurrent writers.
	Put(key string, results []*models.Result)
	// Clear removes all entries.
	Clear()
	// Len returns the number of live entries, including not-yet-evicted
	// expired ones.
	Len() int
}

// Key builds the cache key for a query and authentication flag. Authenticated
// and unauthenticated responses for the same text never collide.
func Key(query string, authenticated bool) string {
	key := strings.ToLower(strings.TrimSpace(query))
	if authenticated {
		return key + "|auth"
	}
	return key + "|anon"
}
