package seq

// node is a tree node owning its children exclusively.
// The node's own value and aggregates always include any pending tag stored on it: add and reverse are pending only for its children.
type node[V Number] struct {
	left, right *node[V]

	value         V
	size          int
	sum, min, max V

	add     V
	reverse bool

	prio uint32 // treap only
}

func newLeaf[V Number](v V, prio uint32) *node[V] {
	return &node[V]{
		value: v,
		size:  1,
		sum:   v,
		min:   v,
		max:   v,
		prio:  prio,
	}
}

func sizeOf[V Number](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// applyAdd adds delta to every value in this subtree, lazily.
func (n *node[V]) applyAdd(delta V) {
	if n == nil {
		return
	}
	n.value += delta
	n.sum += delta * V(n.size)
	n.min += delta
	n.max += delta
	n.add += delta
}

// applyReverse reverses this subtree, lazily.
// Aggregates don't depend on order so only the flag changes.
func (n *node[V]) applyReverse() {
	if n == nil {
		return
	}
	n.reverse = !n.reverse
}

// pushDown moves pending tags onto the children.
// This must be called before reading or rewiring n.left or n.right.
func (n *node[V]) pushDown() {
	if n.reverse {
		n.left, n.right = n.right, n.left
		n.left.applyReverse()
		n.right.applyReverse()
		n.reverse = false
	}
	if n.add != 0 {
		n.left.applyAdd(n.add)
		n.right.applyAdd(n.add)
		n.add = 0
	}
}

// pushUp recomputes size and aggregates from the value and both children.
func (n *node[V]) pushUp() {
	n.size = 1
	n.sum = n.value
	n.min = n.value
	n.max = n.value

	if l := n.left; l != nil {
		n.size += l.size
		n.sum += l.sum
		n.min = min(n.min, l.min)
		n.max = max(n.max, l.max)
	}
	if r := n.right; r != nil {
		n.size += r.size
		n.sum += r.sum
		n.min = min(n.min, r.min)
		n.max = max(n.max, r.max)
	}
}

// aggregate returns the aggregate of the whole subtree.
func (n *node[V]) aggregate() Aggregate[V] {
	if n == nil {
		return Aggregate[V]{}
	}
	return Aggregate[V]{Count: n.size, Sum: n.sum, Min: n.min, Max: n.max}
}

// balancer is a strategy for keeping the tree shallow.
// Both split and merge consume their arguments: the caller must only use the returned trees.
type balancer[V Number] interface {
	// newNode creates a detached node holding v.
	newNode(v V) *node[V]

	// build creates a tree holding vs in order.
	build(vs []V) *node[V]

	// split returns trees holding ranks [0,k) and [k,size(root)).
	// The caller guarantees 0 <= k <= size(root).
	split(root *node[V], k int) (left, right *node[V])

	// merge concatenates two trees, where all of left precedes all of right.
	merge(left, right *node[V]) *node[V]
}
