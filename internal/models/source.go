// Package models defines core data structures for sources, categories, and search results.
package models

// Source identifies one of the external content providers an adapter targets.
type Source string

const (
	SourceDocumentation Source = "documentation"
	SourceCommunity     Source = "community"
	SourceDevSite       Source = "devsite"
	SourceBlog          Source = "blog"
	SourceGitHub        Source = "github"
	SourceVideo         Source = "video"
	SourceGated         Source = "gated"
	// SourceCurated marks hand-authored verified entries; it is not backed by an adapter.
	SourceCurated Source = "curated"
)

// AllSources returns the adapter-backed sources in canonical declaration order.
// The aggregator concatenates adapter results in this order, so it is part of
// the response ordering contract.
func AllSources() []Source {
	return []Source{
		SourceDocumentation,
		SourceCommunity,
		SourceDevSite,
		SourceBlog,
		SourceGitHub,
		SourceVideo,
		SourceGated,
	}
}

// Valid reports whether s is a known source tag.
func (s Source) Valid() bool {
	if s == SourceCurated {
		return true
	}
	for _, known := range AllSources() {
		if s == known {
			return true
		}
	}
	return false
}
