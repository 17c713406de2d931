package seq

import (
	"testing"
)

func TestPushDown(t *testing.T) {
	l := newLeaf[int64](1, 0)
	r := newLeaf[int64](2, 0)
	n := newLeaf[int64](10, 0)
	n.left, n.right = l, r
	n.pushUp()

	if n.size != 3 || n.sum != 13 || n.min != 1 || n.max != 10 {
		t.Fatalf("bad pushUp: %+v", n)
	}

	// both tags at once: swap first, then add to whichever side is now left
	n.applyReverse()
	n.applyAdd(5)
	if n.sum != 28 || n.min != 6 || n.max != 15 || n.value != 15 {
		t.Errorf("applyAdd should update own aggregates: %+v", n)
	}

	n.pushDown()
	if n.left != r || n.right != l {
		t.Errorf("expected children swapped")
	}
	if n.reverse || n.add != 0 {
		t.Errorf("expected tags cleared, was rev=%v add=%d", n.reverse, n.add)
	}
	if !l.reverse || !r.reverse {
		t.Errorf("expected reverse pushed to children")
	}
	if l.value != 6 || r.value != 7 || l.add != 5 || r.add != 5 {
		t.Errorf("expected add pushed to children: l=%+v r=%+v", l, r)
	}

	n.pushUp()
	if n.sum != 28 || n.min != 6 || n.max != 15 {
		t.Errorf("aggregates changed over pushDown/pushUp: %+v", n)
	}
}

func TestApplyAddScalesSum(t *testing.T) {
	s := FromSlice(Splay, []int64{1, 1, 1, 1, 1, 1, 1})
	root := s.(*store[int64]).root
	root.applyAdd(-3)

	if root.sum != -14 || root.min != -2 || root.max != -2 {
		t.Errorf("bad subtree add: sum=%d min=%d max=%d", root.sum, root.min, root.max)
	}
	verify(t, s)
}

func TestNilTags(t *testing.T) {
	var n *node[int64]
	n.applyAdd(4)
	n.applyReverse()
	if sizeOf(n) != 0 || n.aggregate() != (Aggregate[int64]{}) {
		t.Errorf("nil node should be empty")
	}

	leaf := newLeaf[int64](3, 0)
	leaf.applyReverse()
	leaf.applyAdd(2)
	leaf.pushDown() // no children to receive anything
	if leaf.value != 5 || leaf.reverse || leaf.add != 0 {
		t.Errorf("bad leaf pushDown: %+v", leaf)
	}
}
