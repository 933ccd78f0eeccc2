package tree

import "cmp"

// Comparator is a three-way comparison over keys. A negative result means
// a < b, zero means a == b and a positive result means a > b.
//
// A Comparator must be a strict total order. Supplying one that is not
// (for example, one that is not transitive) leaves the tree in an
// unspecified state; this is not detected at runtime.
type Comparator[K any] func(a, b K) int

// Ordering names the three outcomes of a Comparator.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// OrderingOf maps a raw comparison result onto an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Ascending returns the natural order of K.
func Ascending[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Reverse flips the order imposed by c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}
