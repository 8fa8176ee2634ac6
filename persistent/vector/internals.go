package vector

import (
	"errors"
	"fmt"
	"strings"
)

const (
	bits      = 5          // will produce nodes with degree  2 ^ 5 = 32
	width     = 1 << bits  // number of slots of a node
	mask      = width - 1  // bit pattern with trailing 1s of length 'bits'
	lastWidth = width << 1 // top-level data of a 6-level trie gets one extra bit
	maxDepth  = 6
)

// maxLength is the number of elements a vector of maxDepth levels is able to hold.
const maxLength = lastWidth << (bits * (maxDepth - 1))

// Errors for vector operations. Panics raised by vector operations carry an
// error value wrapping one of these.
var (
	// ErrIndexOutOfRange is raised for indices or ranges outside of a vector.
	ErrIndexOutOfRange = errors.New("vector index out of range")
	// ErrCapacityExceeded is raised when a vector would have to grow beyond 6 levels.
	ErrCapacityExceeded = errors.New("vector capacity exceeded")
	// ErrInvariantViolation signals an internal inconsistency. It indicates
	// a bug in this package, never a usage error.
	ErrInvariantViolation = errors.New("vector invariant violated")
)

func indexError(i, length int) error {
	return fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, length)
}

func rangeError(lo, hi, length int) error {
	return fmt.Errorf("%w: range [%d,%d) with length %d", ErrIndexOutOfRange, lo, hi, length)
}

// shift is the number of bits to shift an index with to get its digit at level.
func shift(level int) int {
	return bits * (level - 1)
}

// capacity is the number of elements a full array of the given level holds.
func capacity(level int) int {
	return 1 << (bits * level)
}

// --- Nodes -----------------------------------------------------------------

// vnode is an array of the trie. An array of level 1 holds elements (leafs),
// an array of level n > 1 holds children of level n-1. The level is not stored
// but is always known from the position of the node within the trie.
// An empty array of level > 1 is represented by nil.
//
// Nodes reachable from a vector are never modified.
type vnode[T any] struct {
	leafs    []T
	children []*vnode[T]
}

func leafNode[T any](leafs []T) *vnode[T] {
	return &vnode[T]{leafs: leafs}
}

// branchNode wraps children into a node. It returns nil for an empty list of
// children.
func branchNode[T any](children []*vnode[T]) *vnode[T] {
	if len(children) == 0 {
		return nil
	}
	return &vnode[T]{children: children}
}

// openLeaf and openBranch allocate mutable focus arrays for a builder.
func openLeaf[T any]() *vnode[T] {
	return &vnode[T]{leafs: make([]T, width)}
}

func openBranch[T any](w int) *vnode[T] {
	return &vnode[T]{children: make([]*vnode[T], w)}
}

// width is the number of occupied slots of a node. It is safe to call on nil.
func (node *vnode[T]) width() int {
	if node == nil {
		return 0
	}
	return len(node.leafs) + len(node.children)
}

// size is the number of elements held in node, given it is an array of level
// level with completely filled children.
func (node *vnode[T]) size(level int) int {
	return node.width() << shift(level)
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node == nil {
		b.WriteByte(']')
		return b.String()
	}
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

// --- Array helpers ---------------------------------------------------------

// Arrays of published nodes are never modified in place. All helpers below
// return fresh arrays, except where stated otherwise.

// leafAt descends from node, an array of level level, to the leaf holding
// the element at relative position rel. It returns the leaf and the position
// within the leaf.
func leafAt[T any](node *vnode[T], level, rel int) (*vnode[T], int) {
	i := rel >> shift(level)
	for level > 1 {
		node = node.children[i]
		level--
		i = (rel >> shift(level)) & mask
	}
	return node, i
}

// updatedAt returns a copy of node with the element at relative position rel
// replaced by x. Only nodes along the path are copied.
func updatedAt[T any](node *vnode[T], level, rel int, x T) *vnode[T] {
	i := rel >> shift(level)
	if level == 1 {
		leafs := copyOf(node.leafs)
		leafs[i] = x
		return leafNode(leafs)
	}
	children := copyOf(node.children)
	children[i] = updatedAt(node.children[i], level-1, rel&(capacity(level-1)-1), x)
	return branchNode(children)
}

// copyOf returns a copy of a, with length and capacity len(a).
func copyOf[S ~[]E, E any](a S) S {
	c := make(S, len(a))
	copy(c, a)
	return c
}

// copyRange returns a copy of a[lo:hi].
func copyRange[S ~[]E, E any](a S, lo, hi int) S {
	c := make(S, hi-lo)
	copy(c, a[lo:hi])
	return c
}

// prefixed returns a copy of a with x put in front.
func prefixed[S ~[]E, E any](x E, a S) S {
	c := make(S, len(a)+1)
	c[0] = x
	copy(c[1:], a)
	return c
}

// concatenated returns a fresh array holding the elements of a followed by the
// elements of b.
func concatenated[S ~[]E, E any](a, b S) S {
	c := make(S, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}

// sliceOrShare returns node if [lo,hi) covers all of its slots, otherwise a
// new node with the slots [lo,hi) of node copied.
func sliceOrShare[T any](node *vnode[T], lo, hi int) *vnode[T] {
	if lo == 0 && hi == node.width() {
		return node
	}
	if node.leafs != nil {
		return leafNode(copyRange(node.leafs, lo, hi))
	}
	return branchNode(copyRange(node.children, lo, hi))
}

// exactLeaf returns the first n elements of a builder's focus leaf as a
// leaf node, re-using the array if it is filled completely.
func exactLeaf[T any](node *vnode[T], n int) *vnode[T] {
	if n == len(node.leafs) {
		return node
	}
	return leafNode(copyRange(node.leafs, 0, n))
}

// forEachLeaf calls f for every leaf below node, an array of level level, in
// order (or in reverse order). It stops and returns false as soon as f returns false.
// Recursion is bounded by maxDepth.
func forEachLeaf[T any](node *vnode[T], level int, reverse bool, f func([]T) bool) bool {
	if node == nil {
		return true
	}
	if level == 1 {
		return f(node.leafs)
	}
	n := len(node.children)
	for j := 0; j < n; j++ {
		i := j
		if reverse {
			i = n - 1 - j
		}
		if !forEachLeaf(node.children[i], level-1, reverse, f) {
			return false
		}
	}
	return true
}

// mapNode creates a node of the same shape as node, with f applied to every element.
func mapNode[T, U any](node *vnode[T], level int, f func(T) U) *vnode[U] {
	if node == nil {
		return nil
	}
	if level == 1 {
		leafs := make([]U, len(node.leafs))
		for i, x := range node.leafs {
			leafs[i] = f(x)
		}
		return leafNode(leafs)
	}
	children := make([]*vnode[U], len(node.children))
	for i, ch := range node.children {
		children[i] = mapNode(ch, level-1, f)
	}
	return branchNode(children)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		err := fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(msg, msgargs...))
		tracer().Errorf("%v", err)
		panic(err)
	}
}
