package vector

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fparrow/maybe"
)

// Vector is an immutable persistent vector of items of type T.
//
// The zero value is an empty vector with default settings, ready to use.
type Vector[T any] struct {
	props
	length uint32
	shift  uint32 // we do not store the height h of the trie, but rather bits*h
	root   *vnode[T]
	tail   []T
}

// Immutable creates an empty vector.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{props: defaultProps}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v.normalized()
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying trie
// for a vector. The degree of the trie will be 2^n. Accepted values for n are
// [1…5]; default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//     vec := vector.Immutable[int](vector.BitsPerLevel(3))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return makeProps(uint32(n))
	}
	return Option{config: conf}
}

// normalized makes the zero value usable.
func (v Vector[T]) normalized() Vector[T] {
	if v.bits == 0 {
		v.props = defaultProps
	}
	if v.root == nil {
		v.shift = v.bits
		v.root = emptyNode[T](v.degree)
	}
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in v.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Get returns the item at index i. It panics if i is out of range.
func (v Vector[T]) Get(i int) T {
	v.checkIndex(i)
	return v.leafFor(uint32(i))[uint32(i)&v.mask]
}

// Last returns the last item of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Set returns a copy of v with the item at index i replaced by value.
// It panics if i is out of range.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	v.checkIndex(i)
	inx := uint32(i)
	if inx >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[inx&v.mask] = value
		v.tail = newTail
		return v
	}
	v.root = v.assoc(v.shift, v.root, inx, value)
	return v
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v = v.normalized()
	if v.length-v.tailOffset() < v.degree { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(v.tail)] = value
		v.tail = newTail
		v.length++
		return v
	}
	// tail is full ⇒ have to move tail into trie
	tracer().Debugf("tail is full: %v", v.tail)
	leaf := newLeaf(v.tail)
	if (v.length >> v.bits) > (1 << v.shift) { // root is full ⇒ increment shift
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = v.newPath(v.shift, leaf)
		v.root = newRoot
		v.shift += v.bits
		tracer().Debugf("vector trie grows to height %d", v.shift/v.bits)
	} else {
		v.root = v.pushTail(v.shift, v.root, leaf)
	}
	v.tail = []T{value}
	v.length++
	return v
}

// Pop returns a copy of v with the last item removed. It panics if v is empty.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	if v.length == 1 {
		return Vector[T]{props: v.props}.normalized()
	}
	if v.length-v.tailOffset() > 1 {
		v.tail = cloneTail(v.tail, len(v.tail)-1)
		v.length--
		return v
	}
	// tail becomes empty ⇒ rightmost leaf of the trie becomes the new tail
	newTail := v.leafFor(v.length - 2)
	newRoot := v.popTail(v.shift, v.root)
	if newRoot == nil {
		newRoot = emptyNode[T](v.degree)
	}
	if v.shift > v.bits && newRoot.children[1] == nil { // can lower the height
		newRoot = newRoot.children[0]
		v.shift -= v.bits
		tracer().Debugf("vector trie shrinks to height %d", v.shift/v.bits)
	}
	v.root, v.tail = newRoot, newTail
	v.length--
	return v
}

// All returns an iterator over the items of v, in index order.
func (v Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := uint32(0); i < v.length; {
			leaf := v.leafFor(i)
			for _, item := range leaf {
				if !yield(item) {
					return
				}
			}
			i += uint32(len(leaf))
		}
	}
}

// Slice returns the items of v as a fresh slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.length)
	for item := range v.All() {
		s = append(s, item)
	}
	return s
}

// Concat returns a vector holding the items of v followed by the items of w.
func (v Vector[T]) Concat(w Vector[T]) Vector[T] {
	if v.length == 0 {
		return w
	}
	for item := range w.All() {
		v = v.Push(item)
	}
	return v
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("%v", v.Slice())
}

// Equal reports whether a and b hold the same items in the same order.
func Equal[T comparable](a, b Vector[T]) bool {
	if a.length != b.length {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		if y, _ := next(); x != y {
			return false
		}
	}
	return true
}

func (v Vector[T]) checkIndex(i int) {
	assertThat(i >= 0 && uint64(i) < uint64(v.length), "vector index out of bounds: %d with length %d", i, v.length)
}
