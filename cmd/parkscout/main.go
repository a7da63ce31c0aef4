package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/award/parkscout"
	"github.com/award/parkscout/fs"
	"github.com/award/parkscout/goquery"
	pshttp "github.com/award/parkscout/http"
	"github.com/award/parkscout/mapquest"
	"github.com/award/parkscout/nps"
	pslog "github.com/award/parkscout/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("parkscout"),
		kong.Description("Explore U.S. national sites and the places around them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath := cli.Config
	if configPath == "" {
		configPath = m.ConfigPath
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags and environment win over the config file.
	apiKey := cli.APIKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	cacheDir := cli.CacheDir
	if cacheDir == "" {
		cacheDir = cfg.CacheDir
	}
	if cacheDir == "" {
		cacheDir = defaultCacheDir()
	}
	timeout := cli.Timeout
	if cfg.Timeout != "" && timeout == pshttp.DefaultFetchTimeout {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config %s: %w", configPath, err)
		}
		timeout = d
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %q: %w", cacheDir, err)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := pslog.NewFetcher(pshttp.NewFetcher(pshttp.WithTimeout(timeout)), logger)
	defer fetcher.Close()

	deps.Directory = &nps.DirectoryService{
		Fetcher: fetcher,
		Parser:  goquery.NewDirectoryParser(),
		Cache:   fs.NewCache[string](filepath.Join(cacheDir, "state_cache.json")),
		Logger:  logger,
		BaseURL: cfg.BaseURL,
	}
	deps.Sites = &nps.SiteService{
		Fetcher: fetcher,
		Parser:  goquery.NewSiteParser(),
		Cache:   fs.NewCache[[]parkscout.Site](filepath.Join(cacheDir, "park_cache.json")),
		Logger:  logger,
		BaseURL: cfg.BaseURL,
	}

	// The nearby-places tier needs the API credential; the directory
	// tiers work without it.
	if command(kongCtx) == "explore" {
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: set MAPQUEST_API_KEY or api_key in the config file. Get a key at https://developer.mapquest.com")
			return fmt.Errorf("MapQuest API key not set")
		}
		deps.Nearby = &mapquest.NearbyService{
			Searcher: pshttp.NewPlaceSearcher(apiKey, pshttp.WithSearchTimeout(timeout)),
			Cache:    fs.NewCache[json.RawMessage](filepath.Join(cacheDir, "near_cache.json")),
			Logger:   logger,
		}
	}

	return kongCtx.Run(deps)
}

// command returns the leading word of the resolved Kong command,
// e.g. "sites" for "sites <state>".
func command(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
