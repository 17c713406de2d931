package seq

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// FuzzOps decodes arbitrary bytes into operations, including invalid ones, and checks against a slice.
func FuzzOps(f *testing.F) {
	f.Add([]byte{0, 0, 5, 0, 1, 7, 2, 0, 1, 3, 0, 1, 9, 4, 0, 1})
	f.Add([]byte{1, 0, 0, 2, 3, 1, 255, 255, 255})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, strategy := range strategies {
			s := New[int64](strategy, WithSeed(3))
			var m refModel

			for in := data; len(in) >= 3; in = in[3:] {
				op, a, b := in[0]%6, int(in[1])-8, int(in[2])-8

				// a and b can be out of range on purpose
				var err error
				valid := a >= 0 && b >= a && b < len(m)

				switch op {
				case 0:
					err = s.Insert(a, int64(b))
					if a >= 0 && a <= len(m) {
						m.insert(a, int64(b))
						valid = true
					} else {
						valid = false
					}
				case 1:
					err = s.Delete(a)
					if valid = a >= 0 && a < len(m); valid {
						m.delete(a)
					}
				case 2:
					err = s.Reverse(a, b)
					if valid {
						m.reverse(a, b)
					}
				case 3:
					err = s.Add(a, b, int64(a-b))
					if valid {
						m.add(a, b, int64(a-b))
					}
				case 4:
					var got Aggregate[int64]
					got, err = s.Query(a, b)
					if valid && got != m.query(a, b) {
						t.Fatalf("%v: query(%d,%d): expected=%+v, was=%+v", strategy, a, b, m.query(a, b), got)
					}
				case 5:
					err = s.Set(a, int64(b))
					if valid = a >= 0 && a < len(m); valid {
						m[a] = int64(b)
					}
				}

				if valid && err != nil {
					t.Fatalf("%v: op=%d (%d,%d) failed: %v", strategy, op, a, b, err)
				} else if !valid && !errors.Is(err, ErrInvalidRange) {
					t.Fatalf("%v: op=%d (%d,%d) should fail, was=%v", strategy, op, a, b, err)
				}
			}

			verify(t, s)
			expect(t, s, m)
		}
	})
}

const benchOps = 100_000

func benchmarkMixed(b *testing.B, strategy Strategy) {
	for b.Loop() {
		r := rand.New(rand.NewPCG(1, 1))
		s := New[int64](strategy)

		for range benchOps {
			n := s.Len()
			if n < 2 || r.IntN(3) == 0 {
				s.Insert(r.IntN(n+1), r.Int64N(1000))
				continue
			}

			l, rr := randomRange(r, n)
			switch r.IntN(4) {
			case 0:
				s.Delete(l)
			case 1:
				s.Reverse(l, rr)
			case 2:
				s.Add(l, rr, 1)
			default:
				s.Sum(l, rr)
			}
		}
	}
}

func BenchmarkTreap(b *testing.B) {
	benchmarkMixed(b, Treap)
}

func BenchmarkSplay(b *testing.B) {
	benchmarkMixed(b, Splay)
}
