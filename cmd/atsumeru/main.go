// Package main is the Atsumeru CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hyperjump/atsumeru/internal/aggregator"
	"github.com/hyperjump/atsumeru/internal/auth"
	"github.com/hyperjump/atsumeru/internal/cache"
	"github.com/hyperjump/atsumeru/internal/config"
	"github.com/hyperjump/atsumeru/internal/curated"
	"github.com/hyperjump/atsumeru/internal/models"
	"github.com/hyperjump/atsumeru/internal/server"
	"github.com/hyperjump/atsumeru/internal/source"
	"github.com/hyperjump/atsumeru/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/atsumeru/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	// API keys and gated-source credentials may live in a .env file.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "login":
		runLogin()
	case "logout":
		runLogout()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("atsumeru version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: atsumeru <command> [flags]

Commands:
  server    Run the aggregation server
  search    Search all sources via a running server
  login     Authenticate against a running server
  logout    Clear the server's authentication state
  status    Show the server's authentication status
  version   Print version
  help      Print this help
`)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	curatedSet, err := loadCurated(cfg)
	if err != nil {
		logger.Fatal("Failed to load curated catalog", zap.Error(err))
	}
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Curated.CatalogPath != "" && cfg.Curated.WatchOrDefault() {
		if err := curatedSet.Watch(watchCtx, cfg.Curated.CatalogPath, logger); err != nil {
			logger.Warn("curated catalog watch disabled", zap.Error(err))
		}
	}

	resultCache, err := cache.NewMemory(cfg.Cache.Capacity, cfg.Cache.TTL())
	if err != nil {
		logger.Fatal("Failed to create cache", zap.Error(err))
	}

	agg := aggregator.New(
		buildAdapters(cfg),
		curatedSet,
		resultCache,
		auth.NewState(),
		cfg.Sources.Timeout(),
		logger,
	)

	srv := server.NewServer(agg, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildAdapters wires the enabled source adapters in canonical order.
func buildAdapters(cfg *config.Config) []source.Adapter {
	client := source.NewHTTPClient(cfg.Sources.Timeout())
	var adapters []source.Adapter
	if cfg.Sources.Documentation.EnabledOrDefault() {
		adapters = append(adapters, source.NewDocumentation(cfg.Sources.Documentation.BaseURL, client))
	}
	if cfg.Sources.Community.EnabledOrDefault() {
		adapters = append(adapters, source.NewCommunity(cfg.Sources.Community.BaseURL, client))
	}
	if cfg.Sources.DevSite.EnabledOrDefault() {
		adapters = append(adapters, source.NewDevSite(cfg.Sources.DevSite.BaseURL, client))
	}
	if cfg.Sources.Blog.EnabledOrDefault() {
		adapters = append(adapters, source.NewBlog(cfg.Sources.Blog.BaseURL, client))
	}
	if cfg.Sources.GitHub.EnabledOrDefault() {
		adapters = append(adapters, source.NewGitHub(cfg.Sources.GitHub.BaseURL, cfg.Sources.GitHubTopic, client))
	}
	if cfg.Sources.Video.EnabledOrDefault() {
		adapters = append(adapters, source.NewVideo(cfg.Sources.Video.BaseURL, cfg.Sources.VideoAPIKey, client))
	}
	if cfg.Sources.Gated.EnabledOrDefault() {
		adapters = append(adapters, source.NewGated(cfg.Sources.Gated.BaseURL, client))
	}
	return adapters
}

func loadCurated(cfg *config.Config) (*curated.Set, error) {
	if cfg.Curated.CatalogPath == "" {
		return curated.NewSet(curated.DefaultEntries()), nil
	}
	return curated.Load(cfg.Curated.CatalogPath)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	query := buildSearchQuery(fs.Args())
	if query == "" {
		fmt.Fprintln(os.Stderr, "Usage: atsumeru search [flags] <query>")
		os.Exit(1)
	}

	resp, err := http.Get(*serverURL + "/api/v1/search?q=" + url.QueryEscape(query))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	var response models.SearchResponse
	if err := decodeResponse(resp, &response); err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	if *outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(response)
		return
	}
	printResults(&response)
}

func printResults(response *models.SearchResponse) {
	fmt.Printf("%d results for %q", response.Total, response.Query)
	if response.CacheHit {
		fmt.Print(" (cached)")
	}
	fmt.Println()
	for i, r := range response.Results {
		marker := " "
		if r.Curated {
			marker = "✓"
		}
		fmt.Printf("%2d. %s [%s] %s\n", i+1, marker, r.Source, r.Title)
		if r.Snippet != "" {
			fmt.Printf("       %s\n", utils.Truncate(r.Snippet, 120))
		}
		fmt.Printf("       %s\n", r.Link)
	}
	if response.NeedsLogin {
		fmt.Println("\nSome results are member-only. Run `atsumeru login` to see full content.")
	}
}

func runLogin() {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password (or ATSUMERU_PASSWORD)")
	_ = fs.Parse(os.Args[2:])

	pass := *password
	if pass == "" {
		pass = os.Getenv("ATSUMERU_PASSWORD")
	}

	body, _ := json.Marshal(map[string]string{"username": *username, "password": pass})
	resp, err := http.Post(*serverURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	var result struct {
		Authenticated bool   `json:"authenticated"`
		Token         string `json:"token"`
	}
	if err := decodeResponse(resp, &result); err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logged in.")
}

func runLogout() {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Post(*serverURL+"/api/v1/auth/logout", "application/json", strings.NewReader("{}"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logout failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if err := decodeResponse(resp, &struct{}{}); err != nil {
		fmt.Fprintf(os.Stderr, "Logout failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logged out.")
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/api/v1/auth/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	var status struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := decodeResponse(resp, &status); err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	if status.Authenticated {
		fmt.Println("Authenticated.")
	} else {
		fmt.Println("Not authenticated.")
	}
}

func decodeResponse(resp *http.Response, v any) error {
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
