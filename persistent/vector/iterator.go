package vector

import "iter"

// eachLeaf calls f for every leaf of t, in index order or in reverse order,
// until f returns false. It is safe to call on nil.
func (t *trie[T]) eachLeaf(reverse bool, f func([]T) bool) {
	n := t.fragmentCount()
	for j := 0; j < n; j++ {
		i := j
		if reverse {
			i = n - 1 - j
		}
		level, node := t.fragment(i)
		if !forEachLeaf(node, level, reverse, f) {
			return
		}
	}
}

// leafCursor walks the leafs of a trie one at a time. Arrays above the leaf
// level are tracked on an explicit stack.
type leafCursor[T any] struct {
	t       *trie[T]
	reverse bool
	frags   int // number of fragments visited
	stack   [maxDepth]frame[T]
	n       int // height of stack
}

type frame[T any] struct {
	node  *vnode[T]
	level int
	pos   int // number of children visited
}

func (c *leafCursor[T]) push(node *vnode[T], level int) {
	c.stack[c.n] = frame[T]{node: node, level: level}
	c.n++
}

// next returns the next leaf, or false if all leafs have been visited.
func (c *leafCursor[T]) next() ([]T, bool) {
	for {
		if c.n == 0 {
			count := c.t.fragmentCount()
			if c.frags == count {
				return nil, false
			}
			i := c.frags
			if c.reverse {
				i = count - 1 - i
			}
			c.frags++
			level, node := c.t.fragment(i)
			if node == nil {
				continue
			}
			if level == 1 {
				return node.leafs, true
			}
			c.push(node, level)
			continue
		}
		f := &c.stack[c.n-1]
		w := f.node.width()
		if f.pos == w {
			c.n--
			continue
		}
		i := f.pos
		if c.reverse {
			i = w - 1 - i
		}
		f.pos++
		child := f.node.children[i]
		if f.level == 2 {
			return child.leafs, true
		}
		c.push(child, f.level-1)
	}
}

// Iterator steps through the elements of a vector.
//
//	it := v.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Value())
//	}
type Iterator[T any] struct {
	cursor leafCursor[T]
	leafs  []T
	pos    int
	value  T
}

// Iterator returns an iterator over the elements of v in index order.
// Every call returns a fresh iterator.
func (v Vector[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{cursor: leafCursor[T]{t: v.root}}
}

// ReverseIterator returns an iterator over the elements of v, starting with
// the last one.
func (v Vector[T]) ReverseIterator() *Iterator[T] {
	return &Iterator[T]{cursor: leafCursor[T]{t: v.root, reverse: true}}
}

// Next advances the iterator to the next element. It returns false if there
// are no more elements.
func (it *Iterator[T]) Next() bool {
	for it.pos == len(it.leafs) {
		leafs, ok := it.cursor.next()
		if !ok {
			return false
		}
		it.leafs, it.pos = leafs, 0
	}
	i := it.pos
	if it.cursor.reverse {
		i = len(it.leafs) - 1 - i
	}
	it.value = it.leafs[i]
	it.pos++
	return true
}

// Value returns the current element. It is the zero value of T before the
// first call to Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

// All returns an iterator over index/element pairs of v, in index order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		v.root.eachLeaf(false, func(leafs []T) bool {
			for _, x := range leafs {
				if !yield(i, x) {
					return false
				}
				i++
			}
			return true
		})
	}
}

// Values returns an iterator over the elements of v, in index order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.root.eachLeaf(false, func(leafs []T) bool {
			for _, x := range leafs {
				if !yield(x) {
					return false
				}
			}
			return true
		})
	}
}

// Backward returns an iterator over index/element pairs of v, starting with
// the last element.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := v.Len() - 1
		v.root.eachLeaf(true, func(leafs []T) bool {
			for j := len(leafs) - 1; j >= 0; j-- {
				if !yield(i, leafs[j]) {
					return false
				}
				i--
			}
			return true
		})
	}
}

// FromSeq creates a vector of the elements produced by seq. seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) Vector[T] {
	var b Builder[T]
	return b.AppendSeq(seq).Vector()
}
