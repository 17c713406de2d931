package seq

import (
	"fmt"
	"log"
	"strings"
)

// DebugPrint logs the tree sideways, right subtree first, with any pending tags.
// Tags are shown as stored: children of a node marked "rev" appear in stored, not logical, order.
func (s *store[V]) DebugPrint() {
	log.Printf("> seq len=%d", s.Len())

	type entry struct {
		n     *node[V]
		depth int
	}
	var stack []entry
	n, depth := s.root, 0

	// reverse in-order walk, iterative so that tall splay trees print fine
	for n != nil || len(stack) != 0 {
		for n != nil {
			stack = append(stack, entry{n, depth})
			n, depth = n.right, depth+1
		}

		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var tags []string
		if e.n.add != 0 {
			tags = append(tags, fmt.Sprintf("add=%v", e.n.add))
		}
		if e.n.reverse {
			tags = append(tags, "rev")
		}
		log.Printf("- %s%v (size=%d sum=%v min=%v max=%v) %s",
			strings.Repeat("    ", e.depth), e.n.value, e.n.size, e.n.sum, e.n.min, e.n.max, strings.Join(tags, " "))

		n, depth = e.n.left, e.depth+1
	}
}
