package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/splitrand/internal/tui"
)

type DemoCmd struct {
	Seed string `arg:"" optional:"" default:"splitrand" help:"World seed"`
}

func (c *DemoCmd) Run() error {
	p := tea.NewProgram(tui.New(c.Seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}
