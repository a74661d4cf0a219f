package rng

// Split derives a new independent generator from the current state and
// then advances this generator one step. The advance is deliberate:
// it makes a second Split on the same source yield a different child,
// so siblings produced by repeated splitting are decorrelated.
func (g *Generator) Split() *Generator {
	child := g.SplitNoAdvance()
	g.Uint32()
	return child
}

// SplitNoAdvance derives a new independent generator from the current
// state without modifying this generator.
//
// Hazard: calling SplitNoAdvance twice on the same source without an
// intervening state change returns two identical, fully correlated
// children. Advance the source between calls (or use Split) when
// independence is required.
func (g *Generator) SplitNoAdvance() *Generator {
	b := g.state.Bytes()
	return &Generator{state: hashState(tagSplit, b[:])}
}

// SplitParams derives a new independent generator from the current
// state and an opaque parameter buffer, without modifying this
// generator. The same (state, params) pair always yields the same
// child; different params yield independent children. This is the
// primary mechanism for reproducible hierarchical generation, e.g.
// one child per map coordinate.
//
// The buffer is hashed as raw bytes; callers should serialize any
// structured parameters to a fixed byte layout themselves.
func (g *Generator) SplitParams(params []byte) *Generator {
	b := g.state.Bytes()
	return &Generator{state: hashState(tagParam, b[:], params)}
}
