/*
Package fparrow holds small combinators shared by the sub-packages: identity,
constants, left-to-right composition, pairs, currying and iteration.

Sub-package arrow implements composable wrapped functions, and packages maybe,
result and writer implement the three monadic containers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fparrow

// Identity returns its argument unchanged.
func Identity[T any](x T) T {
	return x
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f ; g, i.e. h(a) = g(f(a)).
//
// Composition reads left to right, in the same order as data flows through
// arrows: f is applied first.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		b := f(a)
		return g(b)
	}
}

// Curry turns a function over pairs into a function of two arguments.
func Curry[A, B, C any](f func(Pair[A, B]) C) func(A, B) C {
	return func(a A, b B) C {
		return f(Pair[A, B]{Fst: a, Snd: b})
	}
}

// Uncurry turns a function of two arguments into a function over pairs.
func Uncurry[A, B, C any](f func(A, B) C) func(Pair[A, B]) C {
	return func(p Pair[A, B]) C {
		return f(p.Fst, p.Snd)
	}
}

// Until applies f to x as long as pred does not hold. pred is checked before
// the first application, so Until may return x itself.
//
// Until will not terminate if pred never holds.
func Until[T any](pred func(T) bool, f func(T) T, x T) T {
	for !pred(x) {
		x = f(x)
	}
	return x
}
