/*
Package result implements the outcome of a computation that may fail.

A Result[S, F] is either Ok with a success value of type S, or Err with a
failure value of type F. Function Bind chains computations; the first Err
short-circuits the chain and is propagated unchanged.

The API follows Elm's Result module:

	Type and Constructors:  Result, Ok, Err
	Mapping:                Map, MapErr, Bimap
	Chaining:               Bind
	Handling Errors:        Either, Try

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "fmt"

// Result is either Ok with a success value of type S, or Err with a failure
// value of type F. F is any caller-defined type; it need not implement error.
//
// Result is a closed sum type. Raw values are extracted with Either or Match;
// there is no implicit conversion to or from package maybe.
type Result[S, F any] interface {
	Match() Matcher[S, F]
	IsOk() bool
	IsErr() bool
	fmt.Stringer
	isResult()
}

type ok[S, F any] struct {
	value S
}

type err[S, F any] struct {
	failure F
}

// Ok constructs a successful Result.
func Ok[S, F any](x S) Result[S, F] {
	return ok[S, F]{value: x}
}

// Err constructs a failed Result.
func Err[S, F any](e F) Result[S, F] {
	return err[S, F]{failure: e}
}

// Try converts Go's (value, error) convention into a Result. A non-nil error
// yields Err, otherwise the value is wrapped as Ok.
func Try[S any](x S, e error) Result[S, error] {
	if e != nil {
		return Err[S](e)
	}
	return Ok[S, error](x)
}

func (r ok[S, F]) isResult()  {}
func (r err[S, F]) isResult() {}

func (r ok[S, F]) IsOk() bool  { return true }
func (r err[S, F]) IsOk() bool { return false }

func (r ok[S, F]) IsErr() bool  { return false }
func (r err[S, F]) IsErr() bool { return true }

func (r ok[S, F]) String() string {
	return fmt.Sprintf("Ok(%v)", r.value)
}

func (r err[S, F]) String() string {
	return fmt.Sprintf("Err(%v)", r.failure)
}

// --- Matching --------------------------------------------------------------

// Matcher is used to switch on the variant of a Result:
//
//     var v int
//     var e error
//     switch m := r.Match(); m {
//     case m.Ok(&v):
//         …
//     case m.Err(&e):
//         …
//     }
//
type Matcher[S, F any] interface {
	Ok(*S) Matcher[S, F]
	Err(*F) Matcher[S, F]
}

type matcher[S, F any] struct {
	value   S
	failure F
	isOk    bool
}

func (r ok[S, F]) Match() Matcher[S, F] {
	return &matcher[S, F]{value: r.value, isOk: true}
}

func (r err[S, F]) Match() Matcher[S, F] {
	return &matcher[S, F]{failure: r.failure}
}

func (rm *matcher[S, F]) Ok(v *S) Matcher[S, F] {
	if rm.isOk {
		*v = rm.value
		return rm
	}
	return nil
}

func (rm *matcher[S, F]) Err(e *F) Matcher[S, F] {
	if !rm.isOk {
		*e = rm.failure
		return rm
	}
	return nil
}
