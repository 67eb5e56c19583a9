package nes

import (
	"iter"
	"slices"
)

// NonEmpty is an immutable ordered sequence with at least one element.
// Build it with Of; the zero value is not valid.
type NonEmpty[E any] struct {
	items []E
}

func Of[E any](head E, tail ...E) NonEmpty[E] {
	items := make([]E, 0, len(tail)+1)
	items = append(items, head)
	items = append(items, tail...)
	return NonEmpty[E]{items: items}
}

// Concat appends right to left. Neither operand is modified.
func Concat[E any](left, right NonEmpty[E]) NonEmpty[E] {
	return NonEmpty[E]{items: slices.Concat(left.items, right.items)}
}

func Map[E, F any](s NonEmpty[E], f func(E) F) NonEmpty[F] {
	out := make([]F, len(s.items))
	for i, e := range s.items {
		out[i] = f(e)
	}
	return NonEmpty[F]{items: out}
}

func (s NonEmpty[E]) Head() E {
	return s.items[0]
}

func (s NonEmpty[E]) Len() int {
	return len(s.items)
}

// Slice returns a copy of the elements.
func (s NonEmpty[E]) Slice() []E {
	return slices.Clone(s.items)
}

func (s NonEmpty[E]) All() iter.Seq2[int, E] {
	return slices.All(s.items)
}

// IsValid reports whether s was built through a constructor.
func (s NonEmpty[E]) IsValid() bool {
	return len(s.items) > 0
}
