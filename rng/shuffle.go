package rng

// Shuffle pseudorandomizes the order of n elements using Fisher-Yates.
// swap swaps the elements with indexes i and j.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(g.UpTo(uint32(i)))
		swap(i, j)
	}
}

// Perm returns a pseudorandom permutation of the integers [0, n).
func (g *Generator) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	g.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}
