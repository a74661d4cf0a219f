package rng

import rand "math/rand/v2"

// source adapts a Generator to the rand/v2 Source interface.
type source struct {
	g *Generator
}

func (s *source) Uint64() uint64 {
	hi := uint64(s.g.Uint32())
	lo := uint64(s.g.Uint32())
	return hi<<32 | lo
}

// Source exposes the generator as a math/rand/v2 Source. Each Uint64
// consumes two steps, high word first. The adapter shares the
// generator's state: draws through it advance g.
func (g *Generator) Source() rand.Source {
	return &source{g: g}
}

// NewRand wraps a generator in a *rand.Rand for callers that want the
// full math/rand/v2 method set over a deterministic, splittable source.
func NewRand(g *Generator) *rand.Rand {
	return rand.New(&source{g: g})
}
