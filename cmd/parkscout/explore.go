package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/award/parkscout"
	"github.com/award/parkscout/mapquest"
)

// Run executes the explore command.
func (c *ExploreCmd) Run(deps *Dependencies) error {
	session := &Session{
		In:        deps.Stdin,
		Out:       deps.Stdout,
		Directory: deps.Directory,
		Sites:     deps.Sites,
		Nearby:    deps.Nearby,
	}
	if err := session.Run(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parkscout.ErrorMessage(err))
		return err
	}
	return nil
}

// Session drives the interactive state → site → nearby-places loop.
// User input mistakes re-prompt; only upstream failures on the very
// first directory load end the session with an error.
type Session struct {
	In        io.Reader
	Out       io.Writer
	Directory parkscout.DirectoryService
	Sites     parkscout.SiteService
	Nearby    parkscout.NearbyService
}

// Run prompts until the user enters "exit" or input is exhausted.
func (s *Session) Run(ctx context.Context) error {
	states, err := s.Directory.StateMap(ctx)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "Enter a state name (e.g. Michigan, michigan) or exit: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name == "exit" {
			return nil
		}

		stateURL, ok := states[name]
		if !ok {
			fmt.Fprintln(s.Out, "[Error] Enter proper state name")
			continue
		}

		sites, err := s.Sites.SitesForState(ctx, stateURL)
		if err != nil {
			fmt.Fprintf(s.Out, "[Error] %s\n", parkscout.ErrorMessage(err))
			continue
		}

		fmt.Fprintln(s.Out, "---------------------")
		fmt.Fprintf(s.Out, "List of national sites in %s\n", name)
		fmt.Fprintln(s.Out, "---------------------")
		for i, site := range sites {
			fmt.Fprintf(s.Out, "[%d] %s\n", i+1, site.Info())
		}

		if exit := s.selectSite(ctx, scanner, sites); exit {
			return nil
		}
	}
}

// selectSite runs the inner site-selection loop. It reports whether the
// user asked to exit the whole session (as opposed to going back to the
// state prompt).
func (s *Session) selectSite(ctx context.Context, scanner *bufio.Scanner, sites []parkscout.Site) bool {
	for {
		fmt.Fprint(s.Out, "Choose the number for detail search or exit or back: ")
		if !scanner.Scan() {
			return true
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "back" {
			return false
		}
		if input == "exit" {
			return true
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(sites) {
			fmt.Fprintln(s.Out, "[Error] Invalid input")
			continue
		}

		raw, err := s.Nearby.NearbyPlaces(ctx, &sites[n-1])
		if err != nil {
			fmt.Fprintf(s.Out, "[Error] %s\n", parkscout.ErrorMessage(err))
			continue
		}
		for _, place := range mapquest.Places(raw) {
			fmt.Fprintf(s.Out, "- %s\n", place.Format())
		}
	}
}
