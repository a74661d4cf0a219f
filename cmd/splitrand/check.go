package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/splitrand/internal/sim"
	"github.com/lox/splitrand/rng"
)

var (
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
)

type CheckCmd struct {
	Seed   string `help:"Root seed for derived scenarios" default:"check"`
	Config string `help:"HCL scenario file (defaults to built-in scenarios)" optional:""`
}

func (c *CheckCmd) Run() error {
	scenarios := sim.DefaultScenarios()
	if c.Config != "" {
		loaded, err := sim.LoadScenarios(c.Config)
		if err != nil {
			return err
		}
		scenarios = loaded
		log.Debug("Loaded scenario config", "file", c.Config, "scenarios", len(loaded))
	}

	fmt.Println(headerStyle.Render("splitrand uniformity checks"))
	fmt.Println()

	results, err := sim.Run(context.Background(), rng.New([]byte(c.Seed)), scenarios)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		status := passStyle.Render("PASS")
		if !r.OK {
			status = failStyle.Render("FAIL")
			failed++
		}
		fmt.Printf("%s  %-14s draws=%-8d bound=%-10d chi2=%9.2f (df=%d) mean=%.1f\n",
			status, r.Scenario.Name, r.Scenario.Draws, r.Scenario.Bound, r.ChiSquare, r.DF, r.Mean)
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	fmt.Println(passStyle.Render(fmt.Sprintf("All %d scenarios passed", len(results))))
	return nil
}
