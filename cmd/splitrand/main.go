package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

type CLI struct {
	Verbose bool `short:"v" help:"Verbose logging"`

	Stream StreamCmd `cmd:"" help:"Emit pseudorandom values from a seed or saved state"`
	Split  SplitCmd  `cmd:"" help:"Derive a child generator and print or save its state"`
	Check  CheckCmd  `cmd:"" help:"Run statistical uniformity checks"`
	Golden GoldenCmd `cmd:"" help:"Print the cross-port reference vector"`
	Demo   DemoCmd   `cmd:"" help:"Explore a procedurally generated world"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("splitrand"),
		kong.Description("Deterministic splittable xorshift128 generator tools"),
	)

	if cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(); err != nil {
		log.Fatal("Command failed", "error", err)
	}
}
