package seq

import (
	"fmt"
	"iter"
)

type store[V Number] struct {
	root *node[V]
	bal  balancer[V]
}

func (s *store[V]) Len() int {
	return sizeOf(s.root)
}

// checkRange validates an inclusive range of existing elements.
func (s *store[V]) checkRange(l, r int) error {
	if l < 0 || r >= s.Len() || l > r {
		return fmt.Errorf("%w: [%d,%d] with len=%d", ErrInvalidRange, l, r, s.Len())
	}
	return nil
}

// carve splits the tree into ranks [0,l), [l,r] and (r,len).
// The root is left empty until stitch is called with the three parts.
func (s *store[V]) carve(l, r int) (before, mid, after *node[V]) {
	before, rest := s.bal.split(s.root, l)
	mid, after = s.bal.split(rest, r-l+1)
	s.root = nil
	return before, mid, after
}

func (s *store[V]) stitch(before, mid, after *node[V]) {
	s.root = s.bal.merge(s.bal.merge(before, mid), after)
}

func (s *store[V]) At(pos int) (v V, err error) {
	if err = s.checkRange(pos, pos); err != nil {
		return
	}
	before, mid, after := s.carve(pos, pos)
	v = mid.value
	s.stitch(before, mid, after)
	return v, nil
}

func (s *store[V]) Set(pos int, v V) error {
	if err := s.checkRange(pos, pos); err != nil {
		return err
	}
	before, mid, after := s.carve(pos, pos)
	mid.value = v
	mid.pushUp()
	s.stitch(before, mid, after)
	return nil
}

func (s *store[V]) Insert(pos int, v V) error {
	if pos < 0 || pos > s.Len() {
		return fmt.Errorf("%w: insert at %d with len=%d", ErrInvalidRange, pos, s.Len())
	}
	before, after := s.bal.split(s.root, pos)
	s.stitch(before, s.bal.newNode(v), after)
	return nil
}

func (s *store[V]) Append(vs ...V) {
	if len(vs) == 0 {
		return
	}
	s.root = s.bal.merge(s.root, s.bal.build(vs))
}

func (s *store[V]) Delete(pos int) error {
	if err := s.checkRange(pos, pos); err != nil {
		return err
	}
	before, _, after := s.carve(pos, pos)
	s.root = s.bal.merge(before, after)
	return nil
}

func (s *store[V]) Reverse(l, r int) error {
	if err := s.checkRange(l, r); err != nil {
		return err
	}
	before, mid, after := s.carve(l, r)
	mid.applyReverse()
	s.stitch(before, mid, after)
	return nil
}

func (s *store[V]) Add(l, r int, delta V) error {
	if err := s.checkRange(l, r); err != nil {
		return err
	}
	before, mid, after := s.carve(l, r)
	mid.applyAdd(delta)
	s.stitch(before, mid, after)
	return nil
}

func (s *store[V]) Query(l, r int) (out Aggregate[V], err error) {
	if err = s.checkRange(l, r); err != nil {
		return
	}
	before, mid, after := s.carve(l, r)
	out = mid.aggregate()
	s.stitch(before, mid, after)
	return out, nil
}

func (s *store[V]) Sum(l, r int) (V, error) {
	agg, err := s.Query(l, r)
	return agg.Sum, err
}

func (s *store[V]) Min(l, r int) (V, error) {
	agg, err := s.Query(l, r)
	return agg.Min, err
}

func (s *store[V]) Max(l, r int) (V, error) {
	agg, err := s.Query(l, r)
	return agg.Max, err
}

func (s *store[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		var stack []*node[V]
		n := s.root
		var pos int

		for n != nil || len(stack) != 0 {
			for n != nil {
				n.pushDown()
				stack = append(stack, n)
				n = n.left
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(pos, n.value) {
				return
			}
			pos++
			n = n.right
		}
	}
}

func (s *store[V]) Values() []V {
	out := make([]V, 0, s.Len())
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}

func (s *store[V]) Clear() {
	s.root = nil
}
