// Package seq implements a rank-indexed sequence of numbers backed by a balanced binary tree.
//
// Positions are 0-indexed and ranges are inclusive.
// Every operation costs expected (treap) or amortized (splay) O(logn).
package seq

import (
	"errors"
	"iter"
)

// ErrInvalidRange is returned for any out-of-bounds position or a range with l > r.
// The Sequence is never modified when this is returned.
var ErrInvalidRange = errors.New("invalid range")

// Number is the set of value types a Sequence can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Aggregate describes a contiguous range of a Sequence.
type Aggregate[V Number] struct {
	Count         int
	Sum, Min, Max V
}

// Sequence is a mutable sequence of numbers supporting positional insert/delete, range reversal, range addition and range queries.
// It is not goroutine-safe; callers must serialize access.
type Sequence[V Number] interface {
	// Len returns the number of elements. O(1).
	Len() int

	// At returns the element at pos.
	At(pos int) (V, error)

	// Set overwrites the element at pos.
	Set(pos int, v V) error

	// Insert places v so that it occupies pos afterwards.
	// Valid for 0 <= pos <= Len().
	Insert(pos int, v V) error

	// Append adds values to the end.
	Append(vs ...V)

	// Delete removes the element at pos.
	Delete(pos int) error

	// Reverse reverses the order of elements in [l,r].
	Reverse(l, r int) error

	// Add adds delta to every element in [l,r].
	Add(l, r int, delta V) error

	// Query returns the aggregate over [l,r].
	Query(l, r int) (Aggregate[V], error)

	// Sum, Min and Max are shorthand for the matching field of Query.
	Sum(l, r int) (V, error)
	Min(l, r int) (V, error)
	Max(l, r int) (V, error)

	// All yields every (position, value) in order.
	// The Sequence must not be modified during iteration.
	All() iter.Seq2[int, V]

	// Values returns a copy of the whole sequence.
	Values() []V

	// Clear removes all elements.
	Clear()
}

// Strategy selects how the underlying tree is kept balanced.
type Strategy int

const (
	// Treap balances via random priorities (expected O(logn) per op).
	Treap Strategy = iota
	// Splay balances by rotating accessed nodes to the root (amortized O(logn) per op).
	Splay
)

func (s Strategy) String() string {
	switch s {
	case Treap:
		return "treap"
	case Splay:
		return "splay"
	}
	return "unknown"
}

// ParseStrategy returns the Strategy with the given name.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "treap":
		return Treap, true
	case "splay":
		return Splay, true
	}
	return 0, false
}

// Priorities is a source of treap priorities.
// Values should be uniformly distributed; ties are permitted but reduce balance.
type Priorities interface {
	Next() uint32
}
