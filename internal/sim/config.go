package sim

import (
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the HCL scenario file layout:
//
//	scenario "small bound" {
//	  draws   = 200000
//	  bound   = 1000
//	  buckets = 40
//	}
type Config struct {
	Scenarios []ScenarioConfig `hcl:"scenario,block"`
}

// ScenarioConfig is one scenario block.
type ScenarioConfig struct {
	Name    string `hcl:"name,label"`
	Seed    string `hcl:"seed,optional"`
	Draws   int    `hcl:"draws,optional"`
	Bound   int    `hcl:"bound,optional"`
	Buckets int    `hcl:"buckets,optional"`
}

// DefaultScenarios covers the bounds the generator is most commonly
// used with, including the degenerate power-of-two and prime cases.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "bound-2", Draws: 200000, Bound: 2, Buckets: 2},
		{Name: "bound-6", Draws: 200000, Bound: 6, Buckets: 6},
		{Name: "bound-256", Draws: 200000, Bound: 256, Buckets: 32},
		{Name: "bound-1000", Draws: 200000, Bound: 1000, Buckets: 40},
		{Name: "bound-prime", Draws: 200000, Bound: 104729, Buckets: 50},
		{Name: "bound-large", Draws: 200000, Bound: 1 << 30, Buckets: 64},
	}
}

// LoadScenarios parses an HCL scenario file and applies defaults for
// omitted attributes.
func LoadScenarios(filename string) ([]Scenario, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("scenario file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	scenarios := make([]Scenario, 0, len(config.Scenarios))
	for _, sc := range config.Scenarios {
		if sc.Draws == 0 {
			sc.Draws = 200000
		}
		if sc.Bound == 0 {
			sc.Bound = 1000
		}
		if sc.Buckets == 0 {
			sc.Buckets = 40
		}
		if sc.Bound < 0 || int64(sc.Bound) > math.MaxUint32 {
			return nil, fmt.Errorf("scenario %q: bound %d out of uint32 range", sc.Name, sc.Bound)
		}
		scenarios = append(scenarios, Scenario{
			Name:    sc.Name,
			Seed:    sc.Seed,
			Draws:   sc.Draws,
			Bound:   uint32(sc.Bound),
			Buckets: sc.Buckets,
		})
	}
	return scenarios, nil
}
