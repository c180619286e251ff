package maybe

import (
	"iter"

	"github.com/npillmayer/fparrow"
)

// Map applies f to the value of a Just. Nothing maps to Nothing.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := get(x); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Apply is applicative application: Just(f) applied to Just(v) is Just(f(v)).
// If either side is Nothing, the result is Nothing.
func Apply[T, S any](mf Maybe[func(T) S], x Maybe[T]) Maybe[S] {
	f, ok := get(mf)
	if !ok {
		return Nothing[S]()
	}
	return Map(f, x)
}

// Bind chains a Maybe-producing function: Just(v) binds to f(v), Nothing
// binds to Nothing without calling f.
func Bind[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := get(x); ok {
		if r := f(v); r != nil {
			return r
		}
	}
	return Nothing[S]()
}

// AndThen is Bind under its Elm name.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	return Bind(f, x)
}

// Fold eliminates a Maybe: it returns f(v) for Just(v), and def for Nothing.
func Fold[T, R any](def R, f func(T) R, x Maybe[T]) R {
	if v, ok := get(x); ok {
		return f(v)
	}
	return def
}

// Both pairs the values of two Maybes if both are Just.
func Both[A, B any](a Maybe[A], b Maybe[B]) Maybe[fparrow.Pair[A, B]] {
	va, oka := get(a)
	vb, okb := get(b)
	if !oka || !okb {
		return Nothing[fparrow.Pair[A, B]]()
	}
	return Just(fparrow.P(va, vb))
}

// --- Sequences -------------------------------------------------------------

// MapMaybe maps f over a sequence and keeps the values of Just results, in
// input order. The resulting sequence is lazy.
func MapMaybe[A, B any](f func(A) Maybe[B], xs iter.Seq[A]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for x := range xs {
			if v, ok := get(f(x)); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// CatMaybes drops all Nothings from a sequence and unwraps the Justs.
func CatMaybes[A any](ms iter.Seq[Maybe[A]]) iter.Seq[A] {
	return MapMaybe(fparrow.Identity[Maybe[A]], ms)
}

// Traverse maps f over a finite sequence. If all results are Just, it returns
// Just the slice of their values in input order. It stops at the first Nothing
// and returns Nothing; f is not called for any element after that.
func Traverse[A, B any](f func(A) Maybe[B], xs iter.Seq[A]) Maybe[[]B] {
	r := make([]B, 0)
	for x := range xs {
		v, ok := get(f(x))
		if !ok {
			return Nothing[[]B]()
		}
		r = append(r, v)
	}
	return Just(r)
}

// Sequence turns a finite sequence of Maybes into Just the slice of values,
// or Nothing if any element is Nothing.
func Sequence[A any](ms iter.Seq[Maybe[A]]) Maybe[[]A] {
	return Traverse(fparrow.Identity[Maybe[A]], ms)
}
