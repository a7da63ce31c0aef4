package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/award/parkscout"
)

// Run executes the states command.
func (c *StatesCmd) Run(deps *Dependencies) error {
	states, err := deps.Directory.StateMap(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", parkscout.ErrorMessage(err))
		return err
	}

	for _, name := range slices.Sorted(maps.Keys(states)) {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", name, states[name])
	}

	return nil
}
