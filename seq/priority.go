package seq

import (
	"math/rand/v2"

	"github.com/taylorza/go-lfsr"
)

// NewPriorities returns a Priorities backed by a 32-bit LFSR.
// It never repeats a value until 2^32-1 values have been drawn.
// A zero seed is replaced, as it would lock the LFSR at zero.
func NewPriorities(seed uint32) Priorities {
	if seed == 0 {
		seed = 1
	}
	return &lfsrPriorities{gen: lfsr.NewLfsr32(seed)}
}

// randomPriorities returns a Priorities with a random seed.
func randomPriorities() Priorities {
	return NewPriorities(rand.Uint32())
}

type lfsrPriorities struct {
	gen *lfsr.Lfsr32
}

func (p *lfsrPriorities) Next() uint32 {
	// restarting just cycles through the same values again, which is fine
	v, _ := p.gen.Next()
	return mix32(v)
}

// mix32 is the murmur3 finalizer.
// Consecutive LFSR states are shifts of each other; this bijection decorrelates them without introducing collisions.
func mix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
