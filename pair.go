package fparrow

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. It is the type arrows use to carry two values side by side.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// P constructs a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Fst, p.Snd
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd)
}

// Dup duplicates a value into a pair.
func Dup[A any](x A) Pair[A, A] {
	return Pair[A, A]{x, x}
}

// Swap exchanges the components of a pair.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{p.Snd, p.Fst}
}
