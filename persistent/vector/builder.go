package vector

import "iter"

// Builder is a transient helper for constructing vectors. Elements are appended
// to a set of mutable focus arrays, one per level of the trie under construction.
// Each level is re-allocated only every 32^level additions, which makes
// appending amortized O(1).
//
// The zero value is an empty builder ready to use. A builder must not be
// shared between goroutines. Calling Vector hands the focus arrays over to the
// resulting vector and leaves the builder empty.
type Builder[T any] struct {
	a       [maxDepth + 1]*vnode[T] // focus arrays by level; index 0 is unused
	len1    int                     // number of elements in a[1]
	lenRest int                     // number of elements (and offset) before a[1]
	offset  int                     // virtual elements in front, see initFrom
	depth   int
}

// NewBuilder creates an empty builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Len returns the number of elements added so far.
func (b *Builder[T]) Len() int {
	return b.len1 + b.lenRest - b.offset
}

// Reset discards all elements of b.
func (b *Builder[T]) Reset() {
	*b = Builder[T]{}
}

// Push appends x.
func (b *Builder[T]) Push(x T) *Builder[T] {
	b.open()
	if b.len1 == width {
		b.advance()
	}
	b.a[1].leafs[b.len1] = x
	b.len1++
	return b
}

// PushAll appends all of xs. xs is copied, clients are free to modify xs afterwards.
func (b *Builder[T]) PushAll(xs ...T) *Builder[T] {
	for len(xs) > 0 {
		n := b.addLeafs(xs)
		xs = xs[n:]
	}
	return b
}

// AppendVector appends all elements of v. If b is empty, the new vector will
// share all of v's arrays except the ones along its right edge.
func (b *Builder[T]) AppendVector(v Vector[T]) *Builder[T] {
	if v.root == nil {
		return b
	}
	if b.len1 == 0 && b.lenRest == 0 {
		b.initFrom(v.root)
		return b
	}
	for i := 0; i < v.root.fragmentCount(); i++ {
		b.addNode(v.root.fragment(i))
	}
	return b
}

// AppendSeq appends all elements produced by seq. seq must be finite.
func (b *Builder[T]) AppendSeq(seq iter.Seq[T]) *Builder[T] {
	for x := range seq {
		b.Push(x)
	}
	return b
}

// open allocates the first focus array on first use.
func (b *Builder[T]) open() {
	if b.depth == 0 {
		b.a[1] = openLeaf[T]()
		b.depth = 1
	}
}

// addLeafs copies as many elements of xs into the open leaf as fit, advancing
// beforehand if the leaf is already full. It returns the number of elements copied.
func (b *Builder[T]) addLeafs(xs []T) int {
	if len(xs) == 0 {
		return 0
	}
	b.open()
	if b.len1 == width {
		b.advance()
	}
	n := copy(b.a[1].leafs[b.len1:], xs)
	b.len1 += n
	return n
}

// addNode appends all elements below node, an array of level level, one leaf
// at a time.
func (b *Builder[T]) addNode(level int, node *vnode[T]) {
	forEachLeaf(node, level, false, func(leafs []T) bool {
		b.PushAll(leafs...)
		return true
	})
}

// advance closes the open leaf and opens a new one. The XOR of the old and the
// new total tells which levels get a new focus array: all levels below the
// highest bit that changed.
func (b *Builder[T]) advance() {
	idx := b.lenRest + width
	if idx >= maxLength {
		tracer().Errorf("vector: cannot grow beyond %d elements", maxLength)
		panic(ErrCapacityExceeded)
	}
	xor := idx ^ b.lenRest
	b.lenRest = idx
	b.len1 = 0
	level := 1 // highest level which gets a new focus array
	for level < maxDepth-1 && xor >= capacity(level+1) {
		level++
	}
	assertThat(b.depth >= level, "builder of depth %d advancing at level %d", b.depth, level)
	if b.depth == level {
		w := width
		if level+1 == maxDepth {
			w = lastWidth
		}
		top := openBranch[T](w)
		top.children[0] = b.a[level]
		b.a[level+1] = top
		b.depth = level + 1
		tracer().Debugf("vector: builder grows to depth %d at %d elements", b.depth, idx-b.offset)
	}
	b.a[1] = openLeaf[T]()
	for k := 2; k <= level; k++ {
		b.a[k] = openBranch[T](width)
	}
	for k := 1; k <= level; k++ {
		b.a[k+1].children[digit(idx, k+1)] = b.a[k]
	}
}

// digit extracts the index digit of i at level. The digit for the top level
// of a 6-level trie is not masked, as it has one extra bit.
func digit(i, level int) int {
	if level == maxDepth {
		return i >> shift(level)
	}
	return (i >> shift(level)) & mask
}

// initFrom sets up the focus arrays of an empty builder from an existing trie,
// such that subsequent additions continue right after the last element of t.
//
// The whole prefix chain of t is packed into the first slot of the top focus
// array. To keep the data and suffix arrays of t aligned, the builder pretends
// to hold offset extra elements in front, completing the first top-level slot.
func (b *Builder[T]) initFrom(t *trie[T]) {
	if t == nil {
		return
	}
	d := t.depth
	b.depth = d
	if d == 1 {
		b.a[1] = openLeaf[T]()
		copy(b.a[1].leafs, t.data.leafs)
		b.setLen(t.length)
		return
	}
	b.a[1] = openLeaf[T]()
	copy(b.a[1].leafs, t.suffix[1].leafs)
	for k := 2; k < d; k++ {
		b.a[k] = openBranch[T](width)
		copy(b.a[k].children, t.suffix[k].childrenOrNil())
		b.a[k].children[t.suffix[k].width()] = b.a[k-1]
	}
	w := width
	if d == maxDepth {
		w = lastWidth
	}
	top := openBranch[T](w)
	pre := t.prefix[1]
	for k := 2; k < d; k++ {
		pre = &vnode[T]{children: prefixed(pre, t.prefix[k].childrenOrNil())}
	}
	top.children[0] = pre
	copy(top.children[1:], t.data.childrenOrNil())
	top.children[t.data.width()+1] = b.a[d-1]
	b.a[d] = top
	b.offset = capacity(d-1) - t.cum[d-1]
	b.setLen(t.length + b.offset)
}

func (b *Builder[T]) setLen(n int) {
	b.len1 = n & mask
	b.lenRest = n - b.len1
	if b.len1 == 0 && b.lenRest > 0 {
		// the open leaf is full: force advance() on next addition
		b.len1 = width
		b.lenRest -= width
	}
}

// Vector returns a vector consisting of the elements added to b. Afterwards b
// is empty and may be used to build another vector.
func (b *Builder[T]) Vector() Vector[T] {
	t := b.result()
	b.Reset()
	return Vector[T]{root: t}
}

func (b *Builder[T]) result() *trie[T] {
	n := b.len1 + b.lenRest
	length := n - b.offset
	if length == 0 {
		return nil
	}
	if n <= width {
		t := &trie[T]{depth: 1, length: length, data: exactLeaf(b.a[1], length)}
		t.check()
		return t
	}
	d := 2
	for d < maxDepth && n > capacity(d) {
		d++
	}
	assertThat(d == b.depth, "builder has %d levels, but needs %d for %d elements", b.depth, d, n)
	last := n - 1
	top := b.a[d]
	t := &trie[T]{depth: d, length: length}
	pre := top.children[0]
	for k := d - 1; k > 1; k-- {
		t.prefix[k] = branchNode(copyRange(pre.children, 1, len(pre.children)))
		pre = pre.children[0]
	}
	t.prefix[1] = pre
	td := digit(last, d)
	t.data = branchNode(copyRange(top.children, 1, td))
	suf := top.children[td]
	for k := d - 1; k > 1; k-- {
		i := digit(last, k)
		t.suffix[k] = branchNode(copyRange(suf.children, 0, i))
		suf = suf.children[i]
	}
	t.suffix[1] = exactLeaf(suf, (last&mask)+1)
	t.fixLengths()
	t.check()
	return t
}
