package vector

// trie is the root of a non-empty vector. A trie of depth 1 consists of a
// single leaf (data). A trie of depth d > 1 consists of
//
//	prefix[1], prefix[2], …, prefix[d-1], data, suffix[d-1], …, suffix[2], suffix[1]
//
// where prefix[k] and suffix[k] are arrays of level k and data is an array of level d.
// All children of these arrays are completely filled sub-tries. prefix[1] and
// suffix[1] hold 1…32 elements, prefix[k] and suffix[k] for k > 1 hold
// 0…31 children, and data holds 0…30 children (0…62 for d = 6).
//
// cum[k] is the number of elements in prefix[1]…prefix[k]. This allows
// routing of an index without descending into the prefix chain.
//
// Arrays are indexed by level; index 0 is unused.
type trie[T any] struct {
	depth  int
	length int
	prefix [maxDepth]*vnode[T]
	suffix [maxDepth]*vnode[T]
	data   *vnode[T]
	cum    [maxDepth]int
}

// dataLimit is the maximum width of the data array of a trie of depth d.
func dataLimit(d int) int {
	if d == maxDepth {
		return lastWidth - 2
	}
	return width - 2
}

// fixLengths re-computes the cumulative prefix lengths from the prefix arrays.
func (t *trie[T]) fixLengths() {
	for k := 1; k < t.depth; k++ {
		t.cum[k] = t.cum[k-1] + t.prefix[k].size(k)
	}
}

// check asserts the structural invariants of t.
func (t *trie[T]) check() {
	if t.depth == 1 {
		assertThat(t.data.width() == t.length && t.length > 0 && t.length <= width,
			"single leaf of length %d for vector of length %d", t.data.width(), t.length)
		return
	}
	assertThat(t.depth > 1 && t.depth <= maxDepth, "depth %d", t.depth)
	assertThat(t.prefix[1].width() > 0 && t.suffix[1].width() > 0,
		"empty prefix or suffix at depth %d", t.depth)
	assertThat(t.data.width() <= dataLimit(t.depth), "data width %d at depth %d", t.data.width(), t.depth)
	n := t.cum[t.depth-1] + t.data.size(t.depth)
	for k := 1; k < t.depth; k++ {
		n += t.suffix[k].size(k)
	}
	assertThat(n == t.length, "fragments hold %d elements, vector length is %d", n, t.length)
}

// --- Fragments -------------------------------------------------------------

// fragmentCount is the number of arrays the trie is made of.
func (t *trie[T]) fragmentCount() int {
	if t == nil {
		return 0
	}
	return 2*t.depth - 1
}

// fragment returns the i-th array of t, in index order, together with its level.
func (t *trie[T]) fragment(i int) (int, *vnode[T]) {
	d := t.depth
	switch {
	case i < d-1:
		return i + 1, t.prefix[i+1]
	case i == d-1:
		return d, t.data
	default:
		level := 2*d - 1 - i
		return level, t.suffix[level]
	}
}

// setFragment replaces the i-th array of t.
func (t *trie[T]) setFragment(i int, node *vnode[T]) {
	d := t.depth
	switch {
	case i < d-1:
		t.prefix[i+1] = node
	case i == d-1:
		t.data = node
	default:
		t.suffix[2*d-1-i] = node
	}
}

// --- Lookup ----------------------------------------------------------------

// route finds the fragment holding index i. It returns the fragment's position
// as used by fragment(…), its level and the position of i relative to the start
// of the fragment's aligned region.
//
// Prefix arrays are aligned from their own start. Everything right of the
// prefix chain is aligned from the end of the prefix chain, i.e. digits of
// i - cum[d-1] address data, then suffix[d-1], …, suffix[1].
func (t *trie[T]) route(i int) (frag, level, rel int) {
	d := t.depth
	if d == 1 {
		return 0, 1, i
	}
	if i < t.cum[d-1] {
		k := 1
		for i >= t.cum[k] {
			k++
		}
		return k - 1, k, i - t.cum[k-1]
	}
	io := i - t.cum[d-1]
	if io>>shift(d) < t.data.width() {
		return d - 1, d, io
	}
	sr := io & (capacity(d-1) - 1) // position within the suffix region
	for k := d - 1; k > 1; k-- {
		if (sr>>shift(k))&mask < t.suffix[k].width() {
			return 2*d - 1 - k, k, sr & (capacity(k) - 1)
		}
	}
	return 2*d - 2, 1, sr & mask
}

func (t *trie[T]) at(i int) T {
	frag, level, rel := t.route(i)
	_, node := t.fragment(frag)
	leaf, j := leafAt(node, level, rel)
	return leaf.leafs[j]
}

// updated returns a copy of t with the element at index i replaced by x.
func (t *trie[T]) updated(i int, x T) *trie[T] {
	frag, level, rel := t.route(i)
	_, node := t.fragment(frag)
	c := *t
	c.setFragment(frag, updatedAt(node, level, rel, x))
	return &c
}

// --- Prepend ---------------------------------------------------------------

// prepended returns a trie with x in front of the elements of t. It is the
// mirror image of a builder advancing: prefix[1] grows until it is full, then
// full arrays are carried upwards along the prefix chain. If the data array
// is full as well, the trie grows by one level.
func (t *trie[T]) prepended(x T) *trie[T] {
	if t == nil {
		return &trie[T]{depth: 1, length: 1, data: leafNode([]T{x})}
	}
	if t.depth == 1 {
		if t.length < width {
			return &trie[T]{depth: 1, length: t.length + 1, data: leafNode(prefixed(x, t.data.leafs))}
		}
		c := &trie[T]{depth: 2, length: t.length + 1}
		c.prefix[1] = leafNode([]T{x})
		c.suffix[1] = t.data
		c.fixLengths()
		return c
	}
	c := *t
	c.length++
	d := t.depth
	if t.prefix[1].width() < width {
		c.prefix[1] = leafNode(prefixed(x, t.prefix[1].leafs))
		c.fixLengths()
		return &c
	}
	c.prefix[1] = leafNode([]T{x})
	carry := t.prefix[1] // a full array of level k-1
	for k := 2; k < d; k++ {
		if t.prefix[k].width() < width-1 {
			c.prefix[k] = branchNode(prefixed(carry, t.prefix[k].childrenOrNil()))
			c.fixLengths()
			return &c
		}
		carry = branchNode(prefixed(carry, t.prefix[k].children))
		c.prefix[k] = nil
	}
	if t.data.width() < dataLimit(d) {
		c.data = branchNode(prefixed(carry, t.data.childrenOrNil()))
		c.fixLengths()
		return &c
	}
	if d == maxDepth {
		tracer().Errorf("vector: cannot prepend to a full vector of %d elements", t.length)
		panic(ErrCapacityExceeded)
	}
	tracer().Debugf("vector: prepend grows depth %d → %d", d, d+1)
	c.depth = d + 1
	c.prefix[d] = branchNode([]*vnode[T]{carry})
	c.suffix[d] = t.data
	c.data = nil
	c.fixLengths()
	return &c
}

func (node *vnode[T]) childrenOrNil() []*vnode[T] {
	if node == nil {
		return nil
	}
	return node.children
}
