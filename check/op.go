// Package check drives seq.Sequence implementations against a plain slice model.
package check

import (
	"fmt"

	"github.com/samthor/seqstore/seq"
)

// Kind names a Sequence operation.
type Kind string

const (
	KindInsert  Kind = "insert"
	KindDelete  Kind = "delete"
	KindReverse Kind = "reverse"
	KindAdd     Kind = "add"
	KindSum     Kind = "sum"
	KindMin     Kind = "min"
	KindMax     Kind = "max"
	KindAt      Kind = "at"
	KindSet     Kind = "set"
)

// Kinds lists every known Kind.
var Kinds = []Kind{KindInsert, KindDelete, KindReverse, KindAdd, KindSum, KindMin, KindMax, KindAt, KindSet}

// IsQuery returns whether this Kind reads a value without changing the sequence.
func (k Kind) IsQuery() bool {
	switch k {
	case KindSum, KindMin, KindMax, KindAt:
		return true
	}
	return false
}

// Op is a single operation.
// Pos is used by insert, delete, at and set; L and R by the range operations.
type Op struct {
	Kind  Kind  `yaml:"op"`
	Pos   int   `yaml:"pos,omitempty"`
	L     int   `yaml:"l,omitempty"`
	R     int   `yaml:"r,omitempty"`
	Value int64 `yaml:"value,omitempty"`
}

func (o Op) String() string {
	switch o.Kind {
	case KindInsert, KindSet:
		return fmt.Sprintf("%s(%d, %d)", o.Kind, o.Pos, o.Value)
	case KindDelete, KindAt:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Pos)
	case KindAdd:
		return fmt.Sprintf("%s(%d, %d, %d)", o.Kind, o.L, o.R, o.Value)
	}
	return fmt.Sprintf("%s(%d, %d)", o.Kind, o.L, o.R)
}

// Apply runs op against s.
// The returned value is only meaningful for queries.
func Apply(s seq.Sequence[int64], op Op) (int64, error) {
	switch op.Kind {
	case KindInsert:
		return 0, s.Insert(op.Pos, op.Value)
	case KindDelete:
		return 0, s.Delete(op.Pos)
	case KindReverse:
		return 0, s.Reverse(op.L, op.R)
	case KindAdd:
		return 0, s.Add(op.L, op.R, op.Value)
	case KindSum:
		return s.Sum(op.L, op.R)
	case KindMin:
		return s.Min(op.L, op.R)
	case KindMax:
		return s.Max(op.L, op.R)
	case KindAt:
		return s.At(op.Pos)
	case KindSet:
		return 0, s.Set(op.Pos, op.Value)
	}
	return 0, fmt.Errorf("unknown op: %q", op.Kind)
}
