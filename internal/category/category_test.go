package category

import (
	"testing"

	"github.com/hyperjump/atsumeru/internal/models"
)

func productNames(tags []models.Category) []string {
	var names []string
	for _, c := range tags {
		if c.Kind == models.KindProduct {
			names = append(names, c.Name)
		}
	}
	return names
}

func personaName(t *testing.T, tags []models.Category) string {
	t.Helper()
	var names []string
	for _, c := range tags {
		if c.Kind == models.KindPersona {
			names = append(names, c.Name)
		}
	}
	if len(names) != 1 {
		t.Fatalf("expected exactly one persona tag, got %v", names)
	}
	return names[0]
}

func useCaseNames(tags []models.Category) []string {
	var names []string
	for _, c := range tags {
		if c.Kind == models.KindUseCase {
			names = append(names, c.Name)
		}
	}
	return names
}

func TestCategorizeITSM(t *testing.T) {
	tags := Categorize("Incident management best practices", "Resolving incidents faster", false)
	got := productNames(tags)
	if len(got) != 1 || got[0] != "ITSM" {
		t.Errorf("expected [ITSM], got %v", got)
	}
}

func TestCategorizeMultipleProducts(t *testing.T) {
	tags := Categorize("Security incident response", "Integrating vulnerability scans", false)
	got := productNames(tags)
	if len(got) < 2 {
		t.Fatalf("expected multiple product tags, got %v", got)
	}
	want := map[string]bool{"ITSM": true, "Integration": true, "Security": true}
	for _, name := range got {
		if !want[name] {
			t.Errorf("unexpected product tag %q", name)
		}
	}
}

func TestCategorizeFallbackPlatform(t *testing.T) {
	tags := Categorize("Release notes", "What shipped this quarter", false)
	got := productNames(tags)
	if len(got) != 1 || got[0] != "Platform" {
		t.Errorf("expected [Platform] fallback, got %v", got)
	}
}

func TestCategorizeEmptyInput(t *testing.T) {
	tags := Categorize("", "", false)
	if got := productNames(tags); len(got) != 1 || got[0] != "Platform" {
		t.Errorf("expected [Platform] for empty input, got %v", got)
	}
	if got := personaName(t, tags); got != "All" {
		t.Errorf("expected persona All for empty input, got %q", got)
	}
}

func TestPersonaDeveloperHint(t *testing.T) {
	// Hint wins even when admin keywords are present.
	tags := Categorize("Configure admin settings", "", true)
	if got := personaName(t, tags); got != "Developer" {
		t.Errorf("expected Developer from hint, got %q", got)
	}
}

func TestPersonaPriorityChain(t *testing.T) {
	tests := []struct {
		title   string
		snippet string
		want    string
	}{
		{"Scripting the REST API", "code samples", "Developer"},
		{"Configure your instance", "admin guide", "Administrator"},
		{"Approval process design", "workflow steps", "Process Owner"},
		{"Getting started", "a general overview", "All"},
		// "api" outranks "admin": developer keywords are checked first.
		{"API access for admins", "", "Developer"},
	}
	for _, tt := range tests {
		tags := Categorize(tt.title, tt.snippet, false)
		if got := personaName(t, tags); got != tt.want {
			t.Errorf("Categorize(%q, %q): persona = %q, want %q", tt.title, tt.snippet, got, tt.want)
		}
	}
}

func TestUseCasePriorityChain(t *testing.T) {
	tags := Categorize("Connect to external systems", "Build a reporting dashboard", false)
	got := useCaseNames(tags)
	if len(got) != 1 || got[0] != "Integration" {
		t.Errorf("expected first-match [Integration], got %v", got)
	}
}

func TestUseCaseOptional(t *testing.T) {
	tags := Categorize("Incident overview", "", false)
	if got := useCaseNames(tags); len(got) != 0 {
		t.Errorf("expected no use-case tag, got %v", got)
	}
}

func TestCategorizeTotality(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"workflow automation for hr onboarding", "connect and report"},
		{"xyzzy", "plugh"},
	}
	for _, in := range inputs {
		tags := Categorize(in[0], in[1], false)
		if len(productNames(tags)) < 1 {
			t.Errorf("Categorize(%q, %q) missing product tag", in[0], in[1])
		}
		personaName(t, tags)
	}
}
