package arrow

import (
	"github.com/npillmayer/fparrow"
)

// Arrow is a wrapped function from I to O. Arrows are immutable.
type Arrow[I, O any] struct {
	f    func(I) O
	diag *diagram
}

// New wraps a function into an arrow.
func New[I, O any](f func(I) O) Arrow[I, O] {
	return Named("fn", f)
}

// Named wraps a function into an arrow, labeling it with name. The name is
// used by String and Diagram.
func Named[I, O any](name string, f func(I) O) Arrow[I, O] {
	return Arrow[I, O]{f: f, diag: leaf(name)}
}

// Identity is the arrow which returns its input unchanged.
func Identity[T any]() Arrow[T, T] {
	return Named("id", fparrow.Identity[T])
}

// Apply invokes the wrapped function.
func (a Arrow[I, O]) Apply(x I) O {
	return a.f(x)
}

// Func returns the wrapped function.
func (a Arrow[I, O]) Func() func(I) O {
	return a.f
}

// String returns a one-line rendering of the construction of a, in the
// notation of Haskell's Control.Arrow.
func (a Arrow[I, O]) String() string {
	return a.diag.String()
}

// Diagram renders the construction of a as a tree.
func (a Arrow[I, O]) Diagram() string {
	return a.diag.tree()
}

// --- Composition -----------------------------------------------------------

// Then composes two arrows: the result applies a, then b to the result of a.
//
// Composition is associative.
func Then[A, B, C any](a Arrow[A, B], b Arrow[B, C]) Arrow[A, C] {
	return Arrow[A, C]{
		f:    fparrow.Compose(a.f, b.f),
		diag: compound(">>>", a.diag, b.diag),
	}
}

// After composes two arrows in reverse notation: After(b, a) is the same
// arrow as Then(a, b).
func After[A, B, C any](b Arrow[B, C], a Arrow[A, B]) Arrow[A, C] {
	return Then(a, b)
}

// ThenFunc composes an arrow with a plain function, which is applied second.
func ThenFunc[A, B, C any](a Arrow[A, B], f func(B) C) Arrow[A, C] {
	return Then(a, New(f))
}

// FuncThen composes a plain function with an arrow, which is applied second.
func FuncThen[A, B, C any](f func(A) B, a Arrow[B, C]) Arrow[A, C] {
	return Then(New(f), a)
}
