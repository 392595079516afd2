// Package category tags search results with product, persona, and use-case
// categories using keyword rules over the result text.
package category

import (
	"strings"

	"github.com/hyperjump/atsumeru/internal/models"
)

// rule maps a keyword group to a category name. Rules are evaluated against
// the lowercased title+snippet text.
type rule struct {
	name     string
	keywords []string
}

// productRules are cumulative: every matching rule contributes a tag.
var productRules = []rule{
	{"ITSM", []string{"itsm", "incident", "problem", "change"}},
	{"HR Service Delivery", []string{"hr", "human resources", "employee", "onboarding"}},
	{"Customer Service", []string{"customer service", "csm", "case management"}},
	{"Operations", []string{"operations", "itom", "discovery", "event management"}},
	{"Asset Management", []string{"asset", "itam", "cmdb", "inventory"}},
	{"Integration", []string{"integration", "integrationhub", "rest api", "web service"}},
	{"Security", []string{"security", "secops", "vulnerability", "grc"}},
}

// personaRules form a priority chain: the first matching rule wins.
var personaRules = []rule{
	{"Developer", []string{"script", "code", "api", "developer"}},
	{"Administrator", []string{"admin", "configure"}},
	{"Process Owner", []string{"process", "workflow"}},
}

// useCaseRules form a priority chain; no match means no use-case tag.
var useCaseRules = []rule{
	{"Integration", []string{"integration", "connect"}},
	{"Reporting", []string{"report", "dashboard"}},
	{"Workflow Automation", []string{"workflow", "automation"}},
}

const fallbackProduct = "Platform"
const fallbackPersona = "All"

func (r rule) matches(text string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Categorize maps a title+snippet pair to category tags. developerHint forces
// the Developer persona regardless of keywords. The returned set always
// contains at least one product tag and exactly one persona tag.
func Categorize(title, snippet string, developerHint bool) []models.Category {
	text := strings.ToLower(title + " " + snippet)
	var tags []models.Category

	matched := false
	for _, r := range productRules {
		if r.matches(text) {
			tags = append(tags, models.Category{Kind: models.KindProduct, Name: r.name})
			matched = true
		}
	}
	if !matched {
		tags = append(tags, models.Category{Kind: models.KindProduct, Name: fallbackProduct})
	}

	tags = append(tags, models.Category{Kind: models.KindPersona, Name: persona(text, developerHint)})

	for _, r := range useCaseRules {
		if r.matches(text) {
			tags = append(tags, models.Category{Kind: models.KindUseCase, Name: r.name})
			break
		}
	}
	return tags
}

func persona(text string, developerHint bool) string {
	if developerHint {
		return "Developer"
	}
	for _, r := range personaRules {
		if r.matches(text) {
			return r.name
		}
	}
	return fallbackPersona
}
