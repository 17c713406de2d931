package seq

// splay keeps no balance information: every access rotates the found node to the root.
// Depth can become O(n), so nothing here recurses on the tree; ancestors are kept on an explicit stack.
type splay[V Number] struct {
	path []*node[V] // scratch, reused between accesses
}

func (s *splay[V]) newNode(v V) *node[V] {
	return newLeaf(v, 0)
}

func (s *splay[V]) split(root *node[V], k int) (left, right *node[V]) {
	if k == 0 {
		return nil, root
	} else if k >= sizeOf(root) {
		return root, nil
	}

	root = s.access(root, k-1)
	right = root.right
	root.right = nil
	root.pushUp()
	return root, right
}

func (s *splay[V]) merge(left, right *node[V]) *node[V] {
	if left == nil {
		return right
	} else if right == nil {
		return left
	}

	// the last node of left has no right child once splayed
	left = s.access(left, left.size-1)
	left.right = right
	left.pushUp()
	return left
}

// build creates a perfectly balanced tree holding vs.
func (s *splay[V]) build(vs []V) *node[V] {
	if len(vs) == 0 {
		return nil
	}
	mid := len(vs) / 2
	n := s.newNode(vs[mid])
	n.left = s.build(vs[:mid])
	n.right = s.build(vs[mid+1:])
	n.pushUp()
	return n
}

// access finds the node at rank within root, pushing down tags on the way, and splays it to become the new root.
func (s *splay[V]) access(root *node[V], rank int) *node[V] {
	path := s.path[:0]
	n := root

	for {
		n.pushDown()
		path = append(path, n)

		ls := sizeOf(n.left)
		if rank < ls {
			n = n.left
		} else if rank == ls {
			break
		} else {
			rank -= ls + 1
			n = n.right
		}
	}

	out := splayPath(path)

	clear(path) // don't hold onto nodes for GC
	s.path = path[:0]
	return out
}

// splayPath rotates the last node of path, a chain of parent/child nodes starting at the root, up to the root.
// Every node in path must already be pushed down.
func splayPath[V Number](path []*node[V]) *node[V] {
	for len(path) >= 3 {
		at := len(path)
		x, p, g := path[at-1], path[at-2], path[at-3]

		var top *node[V]
		if (g.left == p) == (p.left == x) {
			// zig-zig
			rotate(g, p)
			top = rotate(p, x)
		} else {
			// zig-zag
			replaceChild(g, p, rotate(p, x))
			top = rotate(g, x)
		}

		path = path[:at-3]
		if len(path) != 0 {
			replaceChild(path[len(path)-1], g, top)
		}
		path = append(path, top)
	}

	if len(path) == 2 {
		return rotate(path[0], path[1])
	}
	return path[0]
}

// rotate lifts x above its parent p and returns x.
// The caller must fix whatever pointed at p.
func rotate[V Number](p, x *node[V]) *node[V] {
	if p.left == x {
		p.left = x.right
		x.right = p
	} else {
		p.right = x.left
		x.left = p
	}
	p.pushUp()
	x.pushUp()
	return x
}

func replaceChild[V Number](parent, prev, next *node[V]) {
	if parent.left == prev {
		parent.left = next
	} else {
		parent.right = next
	}
}
