package main

import (
	"fmt"
	"strings"

	"github.com/award/parkscout"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	states, err := deps.Directory.StateMap(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parkscout.ErrorMessage(err))
		return err
	}

	name := strings.ToLower(strings.TrimSpace(c.State))
	stateURL, ok := states[name]
	if !ok {
		err := parkscout.Errorf(parkscout.ENOTFOUND, "state %q not found in the directory", c.State)
		fmt.Fprintf(deps.Stderr, "error: %s\n", parkscout.ErrorMessage(err))
		return err
	}

	sites, err := deps.Sites.SitesForState(deps.Ctx, stateURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parkscout.ErrorMessage(err))
		return err
	}

	for i, site := range sites {
		fmt.Fprintf(deps.Stdout, "[%d] %s\n", i+1, site.Info())
	}

	return nil
}
