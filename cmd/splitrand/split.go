package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/splitrand/internal/statefile"
	"github.com/lox/splitrand/rng"
)

type SplitCmd struct {
	Seed    string `help:"Seed string for the parent generator" default:"splitrand"`
	State   string `help:"Load the parent from a saved state file instead" type:"existingfile" optional:""`
	Params  string `help:"Parameter bytes for a parameterized split" optional:""`
	Out     string `help:"Write the child state to this file" optional:""`
	Advance bool   `help:"Advance the parent (plain split) and write it back to --state"`
}

func (c *SplitCmd) Run() error {
	parent, err := c.parent()
	if err != nil {
		return err
	}

	var child *rng.Generator
	switch {
	case c.Params != "":
		child = parent.SplitParams([]byte(c.Params))
	case c.Advance:
		child = parent.Split()
	default:
		child = parent.SplitNoAdvance()
	}

	fmt.Println(child.State())

	if c.Out != "" {
		if err := statefile.Save(c.Out, child.State()); err != nil {
			return fmt.Errorf("saving child state: %w", err)
		}
	}
	if c.Advance && c.State != "" {
		if err := statefile.Save(c.State, parent.State()); err != nil {
			return fmt.Errorf("saving advanced parent state: %w", err)
		}
		log.Debug("Advanced parent", "file", c.State, "state", parent.State())
	}
	return nil
}

func (c *SplitCmd) parent() (*rng.Generator, error) {
	if c.State != "" {
		state, err := statefile.Load(c.State)
		if err != nil {
			return nil, err
		}
		return rng.FromState(state), nil
	}
	return rng.New([]byte(c.Seed)), nil
}
