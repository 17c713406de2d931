package seq

// treap keeps the tree heap-ordered on random priorities.
// Expected depth is O(logn), so split and merge recurse.
type treap[V Number] struct {
	prio Priorities
}

func (t *treap[V]) newNode(v V) *node[V] {
	return newLeaf(v, t.prio.Next())
}

// build creates a treap holding vs in O(n) by maintaining the right spine of the tree built so far.
func (t *treap[V]) build(vs []V) *node[V] {
	var spine []*node[V]

	for _, v := range vs {
		n := t.newNode(v)

		var last *node[V]
		for len(spine) != 0 && spine[len(spine)-1].prio < n.prio {
			last = spine[len(spine)-1]
			spine = spine[:len(spine)-1]
			last.pushUp() // nothing more is attached below last
		}

		n.left = last
		if len(spine) != 0 {
			spine[len(spine)-1].right = n
		}
		spine = append(spine, n)
	}

	if len(spine) == 0 {
		return nil
	}
	for i := len(spine) - 1; i >= 0; i-- {
		spine[i].pushUp()
	}
	return spine[0]
}

func (t *treap[V]) split(root *node[V], k int) (left, right *node[V]) {
	if root == nil {
		return nil, nil
	}
	root.pushDown()

	if k <= sizeOf(root.left) {
		// root and its right subtree all go right
		left, root.left = t.split(root.left, k)
		root.pushUp()
		return left, root
	}

	root.right, right = t.split(root.right, k-sizeOf(root.left)-1)
	root.pushUp()
	return root, right
}

func (t *treap[V]) merge(left, right *node[V]) *node[V] {
	if left == nil {
		return right
	} else if right == nil {
		return left
	}

	if left.prio >= right.prio {
		left.pushDown()
		left.right = t.merge(left.right, right)
		left.pushUp()
		return left
	}

	right.pushDown()
	right.left = t.merge(left, right.left)
	right.pushUp()
	return right
}
