/*
Package arrow implements composable wrapped functions.

An Arrow[I, O] wraps a function from I to O. Arrows are combined to larger
arrows:

	Then(a, b)      a, then b on the result of a
	Split(a, b)     a on the first and b on the second component of a pair
	Fanout(a, b)    a and b on the same input, results paired
	First(a)        a on the first component, the second passed through
	Choice(a, b)    result of a, or result of b if a yields nil
	Default(a, d)   a on a non-nil input, d otherwise

Plain functions take part in compositions by wrapping them with New (or by
using ThenFunc and FuncThen, which do this for the client). All combinators
operate on Arrows only.

Sequences are handled with lifted arrows: Map applies a function lazily to
each element of an iter.Seq, ConcurrentMap distributes the applications over
a pool of worker goroutines, and Reduce left-folds a sequence into a single
value.

Arrows do not recover from panics of the functions they wrap. A panic
surfaces to the caller of Apply, even if it occurs on a worker goroutine of
ConcurrentMap.

Every arrow remembers how it has been constructed. Diagram renders this as a
tree, which is helpful for debugging larger compositions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arrow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fparrow.arrow'.
func tracer() tracing.Trace {
	return tracing.Select("fparrow.arrow")
}
