package interfaces

import (
	"cmp"
	"iter"
)

// Maximum returns a when a > b, b otherwise. cmp.Ordered covers integers,
// floats and strings. With a NaN argument the comparison is false, so b is
// returned.
func Maximum[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Range yields Start, Start+1, …, End-1. End is exclusive.
type Range struct {
	Start, End int
	current    int
}

func NewRange(start, end int) *Range {
	return &Range{Start: start, End: end, current: start}
}

// Next returns the next value, or ok=false once End is reached. Further
// calls keep returning false.
func (r *Range) Next() (value int, ok bool) {
	if r.current >= r.End {
		return 0, false
	}
	value = r.current
	r.current++
	return value, true
}

// All adapts the range to a range-over-func iterator. It starts from Start
// regardless of how far Next has advanced.
func (r *Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := r.Start; i < r.End; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
