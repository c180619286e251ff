package arrow

import (
	"iter"
	"slices"
)

// Map lifts f to an arrow over sequences. The resulting sequence is lazy:
// f is applied to an element when the element is requested. The result may
// be iterated more than once if the input sequence can be.
func Map[I, O any](f func(I) O) Arrow[iter.Seq[I], iter.Seq[O]] {
	return MapA(New(f))
}

// MapA lifts arrow a to an arrow over sequences. See Map.
func MapA[I, O any](a Arrow[I, O]) Arrow[iter.Seq[I], iter.Seq[O]] {
	f := a.f
	return Arrow[iter.Seq[I], iter.Seq[O]]{
		f: func(xs iter.Seq[I]) iter.Seq[O] {
			return func(yield func(O) bool) {
				for x := range xs {
					if !yield(f(x)) {
						return
					}
				}
			}
		},
		diag: compound("map", a.diag),
	}
}

// Reduce creates an arrow which left-folds a sequence, starting with zero:
//
//     f( … f(f(zero, x0), x1) …, xn)
//
func Reduce[I, O any](f func(O, I) O, zero O) Arrow[iter.Seq[I], O] {
	return Named("reduce", func(xs iter.Seq[I]) O {
		acc := zero
		for x := range xs {
			acc = f(acc, x)
		}
		return acc
	})
}

// Values is the arrow which turns a slice into a sequence of its elements.
func Values[T any]() Arrow[[]T, iter.Seq[T]] {
	return Named("values", func(xs []T) iter.Seq[T] {
		return slices.Values(xs)
	})
}

// Collect is the arrow which gathers the elements of a finite sequence into
// a slice.
func Collect[T any]() Arrow[iter.Seq[T], []T] {
	return Named("collect", func(xs iter.Seq[T]) []T {
		return slices.Collect(xs)
	})
}
