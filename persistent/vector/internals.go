package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 5 // will produce nodes with degree  2 ^ 5 = 32

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2 ^ bits
	mask   uint32 // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func makeProps(bits uint32) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

var defaultProps = makeProps(defaultBits)

// vnode is a node of the trie. Inner nodes have children, leaf nodes carry a
// bucket of exactly 'degree' items.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func newLeaf[T any](tail []T) *vnode[T] {
	l := make([]T, len(tail))
	copy(l, tail)
	return &vnode[T]{leafs: l}
}

func (node *vnode[T]) clone() *vnode[T] {
	assertThat(node != nil, "inconsistency: attempt to clone a nil node")
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Trie operations -------------------------------------------------------

// tailOffset is the index of the first item held in the tail.
func (v Vector[T]) tailOffset() uint32 {
	if v.length < v.degree {
		return 0
	}
	return ((v.length - 1) >> v.bits) << v.bits
}

// leafFor returns the bucket of items containing index i.
func (v Vector[T]) leafFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs
}

// newPath creates a chain of inner nodes from level down to node.
func (v Vector[T]) newPath(level uint32, node *vnode[T]) *vnode[T] {
	if level == 0 {
		return node
	}
	top := emptyNode[T](v.degree)
	top.children[0] = v.newPath(level-v.bits, node)
	return top
}

// pushTail copies the rightmost path of the trie and hooks leaf into it.
func (v Vector[T]) pushTail(level uint32, parent, leaf *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask
	n := parent.clone()
	if level == v.bits {
		n.children[subidx] = leaf
	} else if child := parent.children[subidx]; child != nil {
		n.children[subidx] = v.pushTail(level-v.bits, child, leaf)
	} else {
		n.children[subidx] = v.newPath(level-v.bits, leaf)
	}
	return n
}

// popTail removes the rightmost leaf of the trie. It returns nil if the
// node becomes empty.
func (v Vector[T]) popTail(level uint32, node *vnode[T]) *vnode[T] {
	subidx := ((v.length - 2) >> level) & v.mask
	if level > v.bits {
		child := v.popTail(level-v.bits, node.children[subidx])
		if child == nil && subidx == 0 {
			return nil
		}
		n := node.clone()
		n.children[subidx] = child
		return n
	}
	if subidx == 0 {
		return nil
	}
	n := node.clone()
	n.children[subidx] = nil
	return n
}

// assoc copies the path to index i and replaces the item there.
func (v Vector[T]) assoc(level uint32, node *vnode[T], i uint32, value T) *vnode[T] {
	n := node.clone()
	if level == 0 {
		n.leafs[i&v.mask] = value
		return n
	}
	subidx := (i >> level) & v.mask
	n.children[subidx] = v.assoc(level-v.bits, node.children[subidx], i, value)
	return n
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
