package main

import (
	"context"
	"io"
	"time"

	"github.com/award/parkscout"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Directory parkscout.DirectoryService
	Sites     parkscout.SiteService
	Nearby    parkscout.NearbyService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Explore ExploreCmd `cmd:"" default:"1" help:"Interactively drill from state to site to nearby places"`
	States  StatesCmd  `cmd:"" help:"List all states in the directory"`
	Sites   SitesCmd   `cmd:"" help:"List the national sites for a state"`

	CacheDir string        `help:"Directory holding the cache documents" env:"PARKSCOUT_CACHE_DIR"`
	APIKey   string        `help:"MapQuest API key" env:"MAPQUEST_API_KEY"`
	Config   string        `help:"Path to the YAML config file" env:"PARKSCOUT_CONFIG"`
	Timeout  time.Duration `help:"HTTP request timeout" default:"10s"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`
}

// ExploreCmd is the "explore" subcommand.
type ExploreCmd struct{}

// StatesCmd is the "states" subcommand.
type StatesCmd struct{}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct {
	State string `arg:"" help:"State name, e.g. Michigan"`
}
