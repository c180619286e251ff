/*
Package writer implements values which carry a log.

A Writer[A, W] pairs a value of type A with an ordered log of entries of type W.
Computations producing Writers are chained with Bind, which concatenates logs:
entries of the left computation come first.

Logs are stored in persistent vectors, so binding does not copy the log
of earlier computations, and every Writer remains valid after being bound.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package writer

import (
	"fmt"

	"github.com/npillmayer/fparrow/persistent/vector"
)

// Writer is a value of type A together with a log of entries of type W.
//
// The zero value is a Writer with a zero value and an empty log.
type Writer[A, W any] struct {
	value A
	log   vector.Vector[W]
}

// Pure wraps a value with an empty log.
func Pure[A, W any](x A) Writer[A, W] {
	return Writer[A, W]{value: x}
}

// Write wraps a value with a log consisting of a single entry.
func Write[A, W any](x A, entry W) Writer[A, W] {
	return Writer[A, W]{value: x, log: vector.Vector[W]{}.Push(entry)}
}

// New wraps a value with a log of entries, in the given order.
func New[A, W any](x A, entries ...W) Writer[A, W] {
	var log vector.Vector[W]
	for _, e := range entries {
		log = log.Push(e)
	}
	return Writer[A, W]{value: x, log: log}
}

// Tell creates a Writer which carries nothing but a log entry.
func Tell[W any](entry W) Writer[struct{}, W] {
	return Write(struct{}{}, entry)
}

// Value returns the value of w.
func (w Writer[A, W]) Value() A {
	return w.value
}

// Log returns the log entries of w, in order.
func (w Writer[A, W]) Log() []W {
	return w.log.Slice()
}

// Len returns the number of log entries.
func (w Writer[A, W]) Len() int {
	return w.log.Len()
}

func (w Writer[A, W]) String() string {
	return fmt.Sprintf("Writer(%v, %v)", w.value, w.log)
}

// Map transforms the value of w, leaving its log unchanged.
func Map[A, B, W any](f func(A) B, w Writer[A, W]) Writer[B, W] {
	return Writer[B, W]{value: f(w.value), log: w.log}
}

// Bind applies f to the value of w. The resulting log is the log of w
// followed by the log of f's result.
func Bind[A, B, W any](f func(A) Writer[B, W], w Writer[A, W]) Writer[B, W] {
	r := f(w.value)
	return Writer[B, W]{value: r.value, log: w.log.Concat(r.log)}
}

// Then sequences two Writers, keeping the value of the second one and
// concatenating the logs.
func Then[A, B, W any](w Writer[A, W], next Writer[B, W]) Writer[B, W] {
	return Writer[B, W]{value: next.value, log: w.log.Concat(next.log)}
}

// Equal compares two Writers by value and log entries.
func Equal[A, W comparable](a, b Writer[A, W]) bool {
	return a.value == b.value && vector.Equal(a.log, b.log)
}
