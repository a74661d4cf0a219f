// Package rng implements a deterministic 32-bit pseudorandom number
// generator with a 128-bit internal state and support for splitting:
// deriving new, statistically independent generators from an existing
// one, optionally keyed by an arbitrary byte buffer. The same seed (or
// the same parent state and parameters) always produces the same
// stream of values, across runs and across processes, which makes the
// package suitable for reproducible procedural generation.
//
// The core step is algorithm "xor128" from p. 5 of Marsaglia,
// "Xorshift RNGs". It is not cryptographically secure.
package rng

// State is the generator's internal 128-bit state: four unsigned
// 32-bit words. It is a plain comparable value and serializes as 16
// little-endian bytes in word order A, B, C, D.
//
// The all-zero state is a fixed point of the step function: a
// generator restored from it emits zero on every step. The seeding
// path never produces it; callers restoring external state are
// responsible for avoiding it if that matters to them.
type State struct {
	A, B, C, D uint32
}

// Generator is a xorshift128 pseudorandom number generator.
//
// A Generator is not safe for concurrent use. The intended pattern for
// parallel work is to derive one child per goroutine up front via
// Split or SplitParams and hand each child to its own goroutine;
// children are statistically independent and need no synchronization.
type Generator struct {
	state State
}

// New creates a Generator seeded from an arbitrary byte buffer. The
// buffer may be empty. Identical buffers always yield identical
// generators.
func New(seed []byte) *Generator {
	return &Generator{state: hashState(tagSeed, seed)}
}

// FromState creates a Generator with the exact state provided, for
// resuming a previously saved session. No validation is performed.
func FromState(s State) *Generator {
	return &Generator{state: s}
}

// State returns the current internal state.
func (g *Generator) State() State {
	return g.state
}

// Uint32 advances the generator one step and returns a pseudorandom
// 32-bit value. The exact shift/xor sequence is a compatibility
// contract: content keyed on this generator must be bit-identical
// across ports, so it must never change.
func (g *Generator) Uint32() uint32 {
	t := g.state.D
	s := g.state.A
	g.state.D = g.state.C
	g.state.C = g.state.B
	g.state.B = s
	t ^= t << 11
	t ^= t >> 8
	g.state.A = t ^ s ^ (s >> 19)
	return g.state.A
}
