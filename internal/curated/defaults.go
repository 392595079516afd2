package curated

// DefaultEntries is the built-in verified catalog, used when no catalog file
// is configured.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Title:   "ITSM Best Practices Guide",
			Snippet: "Verified guidance for incident, problem, and change management rollouts.",
			Link:    "https://docs.example.com/itsm/best-practices",
		},
		{
			Title:   "Incident Management Quick Start",
			Snippet: "Set up incident categories, assignment rules, and SLAs in under an hour.",
			Link:    "https://docs.example.com/itsm/incident-quick-start",
		},
		{
			Title:   "Workflow Automation Cookbook",
			Snippet: "Recipes for approvals, notifications, and scheduled automation.",
			Link:    "https://docs.example.com/platform/workflow-cookbook",
		},
		{
			Title:         "REST API Developer Reference",
			Snippet:       "Endpoints, authentication, and code samples for platform integration.",
			Link:          "https://developer.example.com/api-reference",
			DeveloperHint: true,
		},
		{
			Title:   "Admin Configuration Checklist",
			Snippet: "Everything to configure before go-live, from roles to update sets.",
			Link:    "https://docs.example.com/admin/checklist",
		},
		{
			Title:   "Reporting and Dashboards Overview",
			Snippet: "Build reports and dashboards over any table, with sharing and scheduling.",
			Link:    "https://docs.example.com/reporting/overview",
		},
	}
}
