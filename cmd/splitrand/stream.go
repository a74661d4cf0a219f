package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/splitrand/internal/statefile"
	"github.com/lox/splitrand/rng"
)

type StreamCmd struct {
	Seed   string `help:"Seed string for a fresh generator" default:"splitrand"`
	State  string `help:"Resume from a saved state file instead of seeding" type:"existingfile" optional:""`
	Count  int    `short:"n" default:"10" help:"Number of values to emit"`
	Format string `enum:"u32,hex,real" default:"u32" help:"Output format: u32, hex or real"`
	Save   string `help:"Write the post-run state to this file" optional:""`
}

func (c *StreamCmd) Run() error {
	g, err := c.generator()
	if err != nil {
		return err
	}

	for i := 0; i < c.Count; i++ {
		switch c.Format {
		case "hex":
			fmt.Printf("%08x\n", g.Uint32())
		case "real":
			fmt.Printf("%.17g\n", g.Real())
		default:
			fmt.Println(g.Uint32())
		}
	}

	if c.Save != "" {
		if err := statefile.Save(c.Save, g.State()); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
		log.Debug("Saved state", "file", c.Save, "state", g.State())
	}
	return nil
}

func (c *StreamCmd) generator() (*rng.Generator, error) {
	if c.State != "" {
		state, err := statefile.Load(c.State)
		if err != nil {
			return nil, err
		}
		log.Debug("Resumed state", "file", c.State, "state", state)
		return rng.FromState(state), nil
	}
	return rng.New([]byte(c.Seed)), nil
}
