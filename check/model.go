package check

import (
	"fmt"
	"slices"

	"github.com/samthor/seqstore/seq"
)

// Model is the obvious O(n) implementation of every Op, used as the source of truth.
type Model []int64

func (m Model) validRange(l, r int) error {
	if l < 0 || r >= len(m) || l > r {
		return fmt.Errorf("%w: [%d,%d] with len=%d", seq.ErrInvalidRange, l, r, len(m))
	}
	return nil
}

// Apply runs op against the model, with the same results and errors as Apply on a Sequence.
func (m *Model) Apply(op Op) (int64, error) {
	switch op.Kind {
	case KindInsert:
		if op.Pos < 0 || op.Pos > len(*m) {
			return 0, fmt.Errorf("%w: insert at %d with len=%d", seq.ErrInvalidRange, op.Pos, len(*m))
		}
		*m = slices.Insert(*m, op.Pos, op.Value)
		return 0, nil

	case KindDelete:
		if err := m.validRange(op.Pos, op.Pos); err != nil {
			return 0, err
		}
		*m = slices.Delete(*m, op.Pos, op.Pos+1)
		return 0, nil

	case KindAt, KindSet:
		if err := m.validRange(op.Pos, op.Pos); err != nil {
			return 0, err
		}
		if op.Kind == KindSet {
			(*m)[op.Pos] = op.Value
			return 0, nil
		}
		return (*m)[op.Pos], nil
	}

	if err := m.validRange(op.L, op.R); err != nil {
		return 0, err
	}
	part := (*m)[op.L : op.R+1]

	switch op.Kind {
	case KindReverse:
		slices.Reverse(part)
		return 0, nil
	case KindAdd:
		for i := range part {
			part[i] += op.Value
		}
		return 0, nil
	case KindSum:
		var sum int64
		for _, v := range part {
			sum += v
		}
		return sum, nil
	case KindMin:
		return slices.Min(part), nil
	case KindMax:
		return slices.Max(part), nil
	}
	return 0, fmt.Errorf("unknown op: %q", op.Kind)
}
