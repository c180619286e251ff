/*
Package maybe implements optional values.

A Maybe[T] is either Just(v) or Nothing. It represents absence of a value, not
a failure: Nothing carries no diagnostic payload. For computations which may
fail with an error value, see package result.

Maybe is a closed sum type: the interface is implemented by exactly two
unexported variants. Clients inspect a Maybe with Match

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        …  // use v
    case m.Nothing():
        …
    }

or with one of the eliminators WithDefault, Get and Fold.

A nil Maybe is treated as Nothing by the functions of this package. Clients
should nevertheless always use the constructors Just and Nothing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	IsNothing() bool
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	OrElse(Maybe[T]) Maybe[T]
	fmt.Stringer
	isMaybe()
}

type just[T any] struct {
	value T
}

type nothing[T any] struct{}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return just[T]{value: x}
}

// Nothing returns the empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return nothing[T]{}
}

func (m just[T]) isMaybe()    {}
func (m nothing[T]) isMaybe() {}

func (m just[T]) IsJust() bool    { return true }
func (m nothing[T]) IsJust() bool { return false }

func (m just[T]) IsNothing() bool    { return false }
func (m nothing[T]) IsNothing() bool { return true }

// Get returns the value of a Just, and true. For Nothing it returns the zero
// value of T, and false.
func (m just[T]) Get() (T, bool) {
	return m.value, true
}

func (m nothing[T]) Get() (T, bool) {
	var zero T
	return zero, false
}

func (m just[T]) WithDefault(T) T {
	return m.value
}

func (m nothing[T]) WithDefault(def T) T {
	return def
}

func (m just[T]) Map(f func(T) T) Maybe[T] {
	return Just(f(m.value))
}

func (m nothing[T]) Map(func(T) T) Maybe[T] {
	return m
}

// OrElse returns m if it is a Just, otherwise alt.
func (m just[T]) OrElse(Maybe[T]) Maybe[T] {
	return m
}

func (m nothing[T]) OrElse(alt Maybe[T]) Maybe[T] {
	if alt == nil {
		return m
	}
	return alt
}

func (m just[T]) String() string {
	return fmt.Sprintf("Just(%v)", m.value)
}

func (m nothing[T]) String() string {
	return "Nothing"
}

// get unpacks a Maybe, treating nil as Nothing.
func get[T any](m Maybe[T]) (T, bool) {
	if m == nil {
		var zero T
		return zero, false
	}
	return m.Get()
}

// --- Conversions -----------------------------------------------------------

// FromPointer converts a nullable value: nil becomes Nothing, any other
// pointer becomes Just of the value pointed to.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromOk converts Go's comma-ok idiom into a Maybe.
//
//     v, ok := mymap[key]
//     m := maybe.FromOk(v, ok)
//
func FromOk[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(x)
}

// ToPointer returns a pointer to a copy of the value of a Just, or nil for Nothing.
func ToPointer[T any](m Maybe[T]) *T {
	v, ok := get(m)
	if !ok {
		return nil
	}
	return &v
}

// Equal compares two Maybes structurally.
func Equal[T comparable](a, b Maybe[T]) bool {
	va, oka := get(a)
	vb, okb := get(b)
	if oka != okb {
		return false
	}
	return !oka || va == vb
}

// --- Matching --------------------------------------------------------------

// Matcher is used to switch on the variant of a Maybe. See the package
// documentation for an example.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	value T
	tag   bool
}

func (m just[T]) Match() Matcher[T] {
	return &matcher[T]{value: m.value, tag: true}
}

func (m nothing[T]) Match() Matcher[T] {
	return &matcher[T]{}
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.tag {
		*v = mm.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.tag {
		return mm
	}
	return nil
}
