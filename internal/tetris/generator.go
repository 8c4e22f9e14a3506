package tetris

import "math/rand"

// Generator supplies the kind of each new piece.
type Generator interface {
	Next() Kind
}

// RandomGenerator draws kinds independently and uniformly.
// Short-run repeats are possible; there is no bag.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a generator with a deterministic seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (g *RandomGenerator) Next() Kind {
	return Kinds[g.rng.Intn(len(Kinds))]
}

// SequenceGenerator cycles through a fixed list of kinds.
type SequenceGenerator struct {
	kinds []Kind
	pos   int
}

// NewSequenceGenerator creates a generator that repeats kinds in order.
// An empty list yields I pieces.
func NewSequenceGenerator(kinds ...Kind) *SequenceGenerator {
	return &SequenceGenerator{kinds: kinds}
}

// Next returns the next kind of the sequence.
func (g *SequenceGenerator) Next() Kind {
	if len(g.kinds) == 0 {
		return KindI
	}
	k := g.kinds[g.pos%len(g.kinds)]
	g.pos++
	return k
}
