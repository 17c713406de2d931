package seq

import (
	"math/rand/v2"
	"slices"
	"testing"
)

var strategies = []Strategy{Treap, Splay}

// eachStrategy runs fn as a subtest once per Strategy.
func eachStrategy(t *testing.T, fn func(t *testing.T, build func() Sequence[int64])) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			fn(t, func() Sequence[int64] {
				return New[int64](s, WithSeed(1234))
			})
		})
	}
}

// verify checks size and aggregates at every node without pushing anything down.
func verify(t testing.TB, s Sequence[int64]) {
	t.Helper()
	impl := s.(*store[int64])
	if impl.root == nil {
		return
	}
	verifyNode(t, impl.root)
}

type subtree struct {
	size          int
	sum, min, max int64
}

func verifyNode(t testing.TB, n *node[int64]) subtree {
	out := subtree{size: 1, sum: n.value, min: n.value, max: n.value}

	for _, c := range []*node[int64]{n.left, n.right} {
		if c == nil {
			continue
		}
		sub := verifyNode(t, c)
		out.size += sub.size
		out.sum += sub.sum + n.add*int64(sub.size)
		out.min = min(out.min, sub.min+n.add)
		out.max = max(out.max, sub.max+n.add)
	}

	if n.size != out.size {
		t.Fatalf("bad size: stored=%d, actual=%d", n.size, out.size)
	}
	if n.sum != out.sum || n.min != out.min || n.max != out.max {
		t.Fatalf("bad aggregate: stored=%d/%d/%d, actual=%d/%d/%d", n.sum, n.min, n.max, out.sum, out.min, out.max)
	}
	return out
}

// refModel is a plain slice that mirrors every Sequence operation.
type refModel []int64

func (m *refModel) insert(pos int, v int64) {
	*m = slices.Insert(*m, pos, v)
}

func (m *refModel) delete(pos int) {
	*m = slices.Delete(*m, pos, pos+1)
}

func (m refModel) reverse(l, r int) {
	slices.Reverse(m[l : r+1])
}

func (m refModel) add(l, r int, delta int64) {
	for i := l; i <= r; i++ {
		m[i] += delta
	}
}

func (m refModel) query(l, r int) Aggregate[int64] {
	part := m[l : r+1]
	out := Aggregate[int64]{Count: len(part), Min: part[0], Max: part[0]}
	for _, v := range part {
		out.Sum += v
		out.Min = min(out.Min, v)
		out.Max = max(out.Max, v)
	}
	return out
}

// randomRange returns a valid inclusive range within length n > 0.
func randomRange(r *rand.Rand, n int) (int, int) {
	a, b := r.IntN(n), r.IntN(n)
	return min(a, b), max(a, b)
}
