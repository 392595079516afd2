package curated

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperjump/atsumeru/internal/models"
)

func TestMatchSubstring(t *testing.T) {
	s := NewSet(DefaultEntries())
	results := s.Match("itsm")
	if len(results) == 0 {
		t.Fatal("expected curated matches for itsm")
	}
	for _, r := range results {
		if !r.Curated || r.Source != models.SourceCurated {
			t.Errorf("curated result not tagged as curated: %+v", r)
		}
		if len(r.Categories) == 0 {
			t.Errorf("curated result missing categories: %+v", r)
		}
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	s := NewSet(DefaultEntries())
	if len(s.Match("ITSM Best Practices")) != len(s.Match("itsm best practices")) {
		t.Error("matching should be case-insensitive")
	}
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	s := NewSet([]Entry{
		{Title: "Alpha incident guide"},
		{Title: "Beta incident guide"},
		{Title: "Gamma incident guide"},
	})
	results := s.Match("incident")
	if len(results) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(results))
	}
	for i, want := range []string{"Alpha incident guide", "Beta incident guide", "Gamma incident guide"} {
		if results[i].Title != want {
			t.Errorf("result %d: got %q, want %q", i, results[i].Title, want)
		}
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	s := NewSet(DefaultEntries())
	if got := s.Match("   "); got != nil {
		t.Errorf("expected no matches for blank query, got %v", got)
	}
}

func TestDeveloperHintPersona(t *testing.T) {
	s := NewSet(DefaultEntries())
	results := s.Match("rest api developer reference")
	if len(results) == 0 {
		t.Fatal("expected a match for the developer reference entry")
	}
	found := false
	for _, c := range results[0].Categories {
		if c.Kind == models.KindPersona && c.Name == "Developer" {
			found = true
		}
	}
	if !found {
		t.Error("developer_hint entry should carry the Developer persona")
	}
}

func TestLoadAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curated.yaml")
	catalog := []byte("entries:\n  - title: Seeded Guide\n    snippet: seeded incident content\n    link: https://example.com/a\n")
	if err := os.WriteFile(path, catalog, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}

	updated := []byte("entries:\n  - title: Seeded Guide\n    snippet: seeded incident content\n    link: https://example.com/a\n  - title: Second Guide\n    snippet: more incident content\n    link: https://example.com/b\n")
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(path); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 entries after reload, got %d", s.Len())
	}
}

func TestReloadKeepsPreviousOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curated.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - title: Good\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("entries: [:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(path); err == nil {
		t.Error("expected reload error for malformed yaml")
	}
	if s.Len() != 1 {
		t.Errorf("previous catalog should survive a bad reload, len = %d", s.Len())
	}
}
