package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.Capacity == 0 {
		cfg.Cache.Capacity = 1000
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 30
	}
	if cfg.Sources.TimeoutSeconds == 0 {
		cfg.Sources.TimeoutSeconds = 10
	}
	if cfg.Sources.Documentation.BaseURL == "" {
		cfg.Sources.Documentation.BaseURL = "https://docs.example.com"
	}
	if cfg.Sources.Community.BaseURL == "" {
		cfg.Sources.Community.BaseURL = "https://community.example.com"
	}
	if cfg.Sources.DevSite.BaseURL == "" {
		cfg.Sources.DevSite.BaseURL = "https://developer.example.com"
	}
	if cfg.Sources.Blog.BaseURL == "" {
		cfg.Sources.Blog.BaseURL = "https://blog.example.com"
	}
	if cfg.Sources.GitHub.BaseURL == "" {
		cfg.Sources.GitHub.BaseURL = "https://api.github.com"
	}
	if cfg.Sources.GitHubTopic == "" {
		cfg.Sources.GitHubTopic = "servicenow"
	}
	if cfg.Sources.Video.BaseURL == "" {
		cfg.Sources.Video.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if cfg.Sources.Gated.BaseURL == "" {
		cfg.Sources.Gated.BaseURL = "https://learn.example.com"
	}
	if cfg.UI.DebounceMS == 0 {
		cfg.UI.DebounceMS = 500
	}
}
