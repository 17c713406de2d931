package check

import (
	"math/rand/v2"
)

// Generator produces a stream of random operations.
// It is not goroutine-safe.
type Generator struct {
	r *rand.Rand

	// MaxLen caps the sequence length: at this size inserts are no longer generated.
	MaxLen int

	// MaxValue bounds the magnitude of inserted values and deltas.
	MaxValue int64

	// InvalidRatio is the fraction of operations given deliberately bad bounds.
	InvalidRatio float64
}

// NewGenerator returns a Generator with the given seed and default limits.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		r:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		MaxLen:   10_000,
		MaxValue: 1_000,
	}
}

// Next returns an operation for a sequence of the given length.
func (g *Generator) Next(length int) Op {
	kind := g.kind(length)
	op := Op{Kind: kind}

	switch kind {
	case KindInsert:
		op.Pos = g.r.IntN(length + 1)
		op.Value = g.value()
	case KindDelete, KindAt, KindSet:
		if length != 0 {
			op.Pos = g.r.IntN(length)
		}
		if kind == KindSet {
			op.Value = g.value()
		}
	default:
		if length != 0 {
			a, b := g.r.IntN(length), g.r.IntN(length)
			op.L, op.R = min(a, b), max(a, b)
		}
		if kind == KindAdd {
			op.Value = g.value()
		}
	}

	if g.InvalidRatio > 0 && g.r.Float64() < g.InvalidRatio {
		g.corrupt(&op, length)
	}
	return op
}

func (g *Generator) kind(length int) Kind {
	if length == 0 {
		return KindInsert
	}

	// bias towards inserts while small, so sequences grow to something interesting
	roll := g.r.IntN(20)
	switch {
	case roll < 6 && length < g.MaxLen:
		return KindInsert
	case roll < 8:
		return KindDelete
	case roll < 11:
		return KindReverse
	case roll < 14:
		return KindAdd
	case roll == 14:
		return KindSet
	case roll == 15:
		return KindAt
	}
	return Kinds[4+g.r.IntN(3)] // sum, min or max
}

// corrupt pushes one bound of op out of range.
func (g *Generator) corrupt(op *Op, length int) {
	switch g.r.IntN(3) {
	case 0:
		op.Pos, op.L = -1-g.r.IntN(3), -1-g.r.IntN(3)
	case 1:
		op.Pos, op.R = length+1+g.r.IntN(3), length+g.r.IntN(3)
	default:
		if op.L == op.R {
			op.Pos, op.R = length+1, length
		} else {
			op.L, op.R = op.R, op.L
		}
	}
}

func (g *Generator) value() int64 {
	return g.r.Int64N(2*g.MaxValue+1) - g.MaxValue
}
