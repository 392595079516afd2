// Package curated provides the hand-authored verified result set and its
// local substring matching.
package curated

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/atsumeru/internal/category"
	"github.com/hyperjump/atsumeru/internal/models"
)

// Entry is one verified catalog record as authored in the YAML file.
type Entry struct {
	Title         string `yaml:"title"`
	Snippet       string `yaml:"snippet"`
	Link          string `yaml:"link"`
	DeveloperHint bool   `yaml:"developer_hint"`
}

// Set holds the curated catalog. Match is safe for concurrent use with Reload.
type Set struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewSet creates a set from in-memory entries.
func NewSet(entries []Entry) *Set {
	return &Set{entries: entries}
}

// Load reads the curated catalog from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curated catalog: %w", err)
	}
	entries, err := parse(data)
	if err != nil {
		return nil, err
	}
	return NewSet(entries), nil
}

func parse(data []byte) ([]Entry, error) {
	var doc struct {
		Entries []Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing curated catalog: %w", err)
	}
	return doc.Entries, nil
}

// Reload replaces the catalog from path. On failure the previous catalog is
// kept and the error returned.
func (s *Set) Reload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading curated catalog: %w", err)
	}
	entries, err := parse(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Len returns the catalog size.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Match returns the curated results whose title or snippet contains the
// lowercased query, in static catalog order. Results are stamped with
// categories and the curated source tag.
func (s *Set) Match(query string) []*models.Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	s.mu.RLock()
	entries := s.entries
	s.mu.RUnlock()

	var results []*models.Result
	for i, e := range entries {
		text := strings.ToLower(e.Title + " " + e.Snippet)
		if !strings.Contains(text, q) {
			continue
		}
		results = append(results, &models.Result{
			ID:         fmt.Sprintf("curated-%d", i),
			Title:      e.Title,
			Snippet:    e.Snippet,
			Link:       e.Link,
			Source:     models.SourceCurated,
			Categories: category.Categorize(e.Title, e.Snippet, e.DeveloperHint),
			Curated:    true,
		})
	}
	return results
}
