package arrow

import (
	"fmt"

	"github.com/npillmayer/fparrow"
)

// Split combines two arrows to work on pairs: a is applied to the first
// component and b to the second one. The two applications are independent
// of each other.
func Split[A, B, C, D any](a Arrow[A, B], b Arrow[C, D]) Arrow[fparrow.Pair[A, C], fparrow.Pair[B, D]] {
	f, g := a.f, b.f
	return Arrow[fparrow.Pair[A, C], fparrow.Pair[B, D]]{
		f: func(p fparrow.Pair[A, C]) fparrow.Pair[B, D] {
			return fparrow.P(f(p.Fst), g(p.Snd))
		},
		diag: compound("***", a.diag, b.diag),
	}
}

// Fanout sends its input to both a and b and pairs the results.
// It duplicates the input and then splits.
func Fanout[A, B, C any](a Arrow[A, B], b Arrow[A, C]) Arrow[A, fparrow.Pair[B, C]] {
	fan := Then(Named("dup", fparrow.Dup[A]), Split(a, b))
	fan.diag = compound("&&&", a.diag, b.diag)
	return fan
}

// First lifts a to work on the first component of a pair, passing the second
// component of type T through unchanged.
//
//     f := arrow.First[string](inc)    // Arrow[Pair[int, string], Pair[int, string]]
//
func First[T, A, B any](a Arrow[A, B]) Arrow[fparrow.Pair[A, T], fparrow.Pair[B, T]] {
	return Split(a, Identity[T]())
}

// Second lifts a to work on the second component of a pair, passing the first
// component of type T through unchanged.
func Second[T, A, B any](a Arrow[A, B]) Arrow[fparrow.Pair[T, A], fparrow.Pair[T, B]] {
	return Split(Identity[T](), a)
}

// --- Alternatives ----------------------------------------------------------

// Choice returns the result of a, if it is non-nil, or otherwise the result
// of b. b is not applied if a produces a result.
//
// Choice is a loose combinator: only nil triggers the fallback. A pointer to a
// zero value is a valid result of a. Clients needing a proper alternative
// of optional values should use maybe.OrElse.
func Choice[A, B any](a, b Arrow[A, *B]) Arrow[A, *B] {
	f, g := a.f, b.f
	return Arrow[A, *B]{
		f: func(x A) *B {
			if r := f(x); r != nil {
				return r
			}
			return g(x)
		},
		diag: compound("<+>", a.diag, b.diag),
	}
}

// Default applies a to inputs which are present, i.e. non-nil. For a nil
// input, fallback is applied instead (to the nil input).
func Default[A, B any](a Arrow[A, B], fallback Arrow[*A, B]) Arrow[*A, B] {
	f, g := a.f, fallback.f
	return Arrow[*A, B]{
		f: func(x *A) B {
			if x == nil {
				return g(x)
			}
			return f(*x)
		},
		diag: compound("|||", a.diag, fallback.diag),
	}
}

// DefaultValue applies a to inputs which are non-nil, and returns b for nil
// inputs.
func DefaultValue[A, B any](a Arrow[A, B], b B) Arrow[*A, B] {
	return Default(a, Named(fmt.Sprintf("const %v", b), func(*A) B { return b }))
}
