package seq

// Option configures a new Sequence.
type Option func(*options)

type options struct {
	prio Priorities
}

// WithSeed makes treap priorities deterministic.
// It has no effect on a splay Sequence.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.prio = NewPriorities(seed)
	}
}

// WithPriorities uses the given source for treap priorities.
// It has no effect on a splay Sequence.
func WithPriorities(p Priorities) Option {
	return func(o *options) {
		o.prio = p
	}
}

// New builds an empty Sequence[V] balanced by the given Strategy.
// This panics on an unknown Strategy.
func New[V Number](strategy Strategy, opts ...Option) Sequence[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch strategy {
	case Treap:
		if o.prio == nil {
			o.prio = randomPriorities()
		}
		return &store[V]{bal: &treap[V]{prio: o.prio}}
	case Splay:
		return &store[V]{bal: &splay[V]{}}
	}
	panic("unknown strategy: " + strategy.String())
}

// NewTreap builds an empty Sequence[V] balanced by random priorities.
func NewTreap[V Number](opts ...Option) Sequence[V] {
	return New[V](Treap, opts...)
}

// NewSplay builds an empty Sequence[V] balanced by splaying.
func NewSplay[V Number]() Sequence[V] {
	return New[V](Splay)
}

// FromSlice builds a Sequence[V] holding a copy of values in O(n).
func FromSlice[V Number](strategy Strategy, values []V, opts ...Option) Sequence[V] {
	s := New[V](strategy, opts...)
	s.Append(values...)
	return s
}
