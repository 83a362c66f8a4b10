package workload

import "math/rand"

// Generator draws random operations against a tree of a fixed size.
// queryPercent is the probability, in percent, that a drawn operation is a
// query rather than an add; the bounds hold exactly, so 0 never yields a
// query and 100 always does. Parameter validation is the caller's job: size
// must be positive and queryPercent within [0, 100].
type Generator struct {
	rng          *rand.Rand
	size         int
	queryPercent int
}

// New returns a Generator drawing from rng. Callers that need reproducible
// workloads pass an explicitly seeded source; tests do exactly that.
func New(size, queryPercent int, rng *rand.Rand) *Generator {
	return &Generator{
		rng:          rng,
		size:         size,
		queryPercent: queryPercent,
	}
}

// Size returns the tree size operations are drawn against.
func (g *Generator) Size() int {
	return g.size
}

// Next draws one operation. Each operation is an independent draw; there is
// no dependency between consecutive operations. Draws consume the random
// source in a fixed order (kind, index, then value for adds) so that two
// identically seeded generators produce identical sequences.
func (g *Generator) Next() Operation {
	op := Operation{Kind: KindAdd}
	if g.rng.Intn(100) < g.queryPercent {
		op.Kind = KindQuery
	}
	op.Index = g.rng.Intn(g.size)
	if op.Kind == KindAdd {
		op.Value = 1 + g.rng.Intn(100)
	}
	return op
}
