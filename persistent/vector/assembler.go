package vector

// assembler builds a vector from the elements [lo,hi) of a sequence of source
// tries. Sources are fed fragment by fragment (see trie.fragment) in order. The
// assembler trims fragments to the target range and files the pieces into
// one prefix slot and one suffix slot per level. Sub-arrays completely inside
// the range are shared with the source.
//
// For a single source the pieces arrive with ascending levels for the left
// edge, then descending levels for the right edge, which always fits the slot
// layout. For more than one source a piece may arrive which cannot be placed
// without breaking the alignment of the trie (e.g., a full 32×32 block right
// after a partial leaf). The assembler then switches to a builder, seeded with
// everything assembled so far, and feeds all remaining pieces leaf by leaf.
type assembler[T any] struct {
	lo, hi  int
	pos     int // start position of the next fragment
	length  int // number of elements assembled
	maxDim  int // highest level of a slot in use
	prefix  [maxDepth + 1]*vnode[T]
	suffix  [maxDepth + 1]*vnode[T]
	builder *Builder[T]
}

func newAssembler[T any](lo, hi int) *assembler[T] {
	return &assembler[T]{lo: lo, hi: hi}
}

// considerAll feeds all fragments of t.
func (s *assembler[T]) considerAll(t *trie[T]) {
	for i := 0; i < t.fragmentCount(); i++ {
		s.consider(t.fragment(i))
	}
}

// consider feeds a single fragment, an array of level level.
func (s *assembler[T]) consider(level int, node *vnode[T]) {
	count := node.size(level)
	lo := max(s.lo-s.pos, 0)
	hi := min(s.hi-s.pos, count)
	if hi > lo {
		s.addSlice(level, node, lo, hi)
	}
	s.pos += count
}

// addSlice adds the elements [lo,hi) of node, an array of level level with
// full children. Only arrays straddling lo or hi are descended into.
func (s *assembler[T]) addSlice(level int, node *vnode[T], lo, hi int) {
	for level > 1 {
		sh := shift(level)
		loN, hiN := lo>>sh, hi>>sh
		loRest, hiRest := lo&(capacity(level-1)-1), hi&(capacity(level-1)-1)
		if loN == hiN { // [lo,hi) is contained in a single child
			node = node.children[loN]
			lo, hi = loRest, hiRest
			level--
			continue
		}
		if loRest != 0 {
			s.addLeftEdge(level-1, node.children[loN], loRest)
			loN++
		}
		if hiN > loN {
			s.add(level, sliceOrShare(node, loN, hiN))
		}
		if hiRest != 0 {
			s.addRightEdge(level-1, node.children[hiN], hiRest)
		}
		return
	}
	s.add(1, sliceOrShare(node, lo, hi))
}

// addLeftEdge adds the elements [lo,end) of node, a full array of level level.
// Pieces are added bottom-up, thus the path is collected first.
func (s *assembler[T]) addLeftEdge(level int, node *vnode[T], lo int) {
	type step struct {
		node  *vnode[T]
		level int
		from  int
	}
	var path [maxDepth]step
	n := 0
	for {
		if level == 1 {
			path[n] = step{node, 1, lo}
			n++
			break
		}
		from := lo >> shift(level)
		rest := lo & (capacity(level-1) - 1)
		if rest == 0 {
			path[n] = step{node, level, from}
			n++
			break
		}
		path[n] = step{node, level, from + 1}
		n++
		node = node.children[from]
		lo = rest
		level--
	}
	for i := n - 1; i >= 0; i-- {
		st := path[i]
		if st.from < st.node.width() {
			s.add(st.level, sliceOrShare(st.node, st.from, st.node.width()))
		}
	}
}

// addRightEdge adds the elements [0,hi) of node, a full array of level level.
func (s *assembler[T]) addRightEdge(level int, node *vnode[T], hi int) {
	for level > 1 {
		to := hi >> shift(level)
		if to > 0 {
			s.add(level, sliceOrShare(node, 0, to))
		}
		hi &= capacity(level-1) - 1
		if hi == 0 {
			return
		}
		node = node.children[to]
		level--
	}
	s.add(1, sliceOrShare(node, 0, hi))
}

// add files a piece, an array of level level with full children, into a slot.
func (s *assembler[T]) add(level int, node *vnode[T]) {
	if node.width() == 0 {
		return
	}
	if s.builder != nil {
		s.builder.addNode(level, node)
		s.length += node.size(level)
		return
	}
	if s.fits(level, node) {
		s.length += node.size(level)
		return
	}
	tracer().Debugf("vector: piece of level %d does not align at %d, switching to builder", level, s.length)
	t := s.result()
	s.builder = NewBuilder[T]()
	s.builder.initFrom(t)
	s.builder.addNode(level, node)
	s.length += node.size(level)
}

// fits tries to file node into a slot and reports whether it did.
func (s *assembler[T]) fits(level int, node *vnode[T]) bool {
	for k := 1; k < level && k <= s.maxDim; k++ {
		if s.suffix[k] != nil {
			return false // a partial array of lower level is to the left of node
		}
	}
	if level > s.maxDim {
		s.prefix[level] = node
		s.maxDim = level
		return true
	}
	if s.suffix[level] == nil {
		s.suffix[level] = node
		return true
	}
	// accumulate into the suffix slot if the result is still a valid edge array
	w := s.suffix[level].width() + node.width()
	if level == 1 && w <= width {
		s.suffix[1] = leafNode(concatenated(s.suffix[1].leafs, node.leafs))
		return true
	}
	if level > 1 && w < width {
		s.suffix[level] = branchNode(concatenated(s.suffix[level].children, node.children))
		return true
	}
	return false
}

// result creates the trie. The slots of s are consumed.
func (s *assembler[T]) result() *trie[T] {
	if s.builder != nil {
		return s.builder.result()
	}
	if s.length == 0 {
		return nil
	}
	if s.length <= width {
		return s.flatten()
	}
	s.balancePrefix(1)
	s.balanceSuffix(1)
	d := s.maxDim
	if pre, suf := s.prefix[d], s.suffix[d]; pre != nil && suf != nil {
		// two top-level slots: concatenate if they fit into the data array,
		// otherwise open another level
		if pre.width()+suf.width() <= dataLimit(d) {
			if d == 1 {
				s.prefix[1] = leafNode(concatenated(pre.leafs, suf.leafs))
			} else {
				s.prefix[d] = branchNode(concatenated(pre.children, suf.children))
			}
			s.suffix[d] = nil
		} else {
			d++
		}
	} else if one := s.top(); one.width() > dataLimit(d) {
		// a single top-level slot coming from a prefix or suffix may be too wide
		// for the data array
		d++
	}
	if d > maxDepth {
		panic(ErrCapacityExceeded)
	}
	t := &trie[T]{depth: d, length: s.length}
	t.prefix[1], t.suffix[1] = s.prefix[1], s.suffix[1]
	for k := 2; k < d; k++ {
		t.prefix[k], t.suffix[k] = s.prefix[k], s.suffix[k]
	}
	if d == s.maxDim {
		t.data = s.top()
	}
	t.fixLengths()
	t.check()
	return t
}

// top returns the (only) slot in use at maxDim.
func (s *assembler[T]) top() *vnode[T] {
	if s.prefix[s.maxDim] != nil {
		return s.prefix[s.maxDim]
	}
	return s.suffix[s.maxDim]
}

// flatten copies all pieces into a single leaf. The total number of assembled
// elements must not exceed the width of a leaf.
func (s *assembler[T]) flatten() *trie[T] {
	leafs := make([]T, 0, s.length)
	collect := func(l []T) bool {
		leafs = append(leafs, l...)
		return true
	}
	for k := 1; k <= s.maxDim; k++ {
		forEachLeaf(s.prefix[k], k, false, collect)
	}
	for k := s.maxDim; k >= 1; k-- {
		forEachLeaf(s.suffix[k], k, false, collect)
	}
	assertThat(len(leafs) == s.length, "assembled %d elements into a leaf, expected %d", len(leafs), s.length)
	t := &trie[T]{depth: 1, length: s.length, data: leafNode(leafs)}
	t.check()
	return t
}

// balancePrefix makes sure the prefix slot at level n is not empty, borrowing
// the first child of the next level's prefix if necessary. Recursion is bounded
// by maxDim.
func (s *assembler[T]) balancePrefix(n int) {
	if s.prefix[n] != nil {
		return
	}
	if n == s.maxDim {
		s.prefix[n], s.suffix[n] = s.suffix[n], nil
		return
	}
	s.balancePrefix(n + 1)
	up := s.prefix[n+1]
	s.prefix[n] = up.children[0]
	if up.width() == 1 {
		s.prefix[n+1] = nil
		if s.maxDim == n+1 && s.suffix[n+1] == nil {
			s.maxDim = n
		}
	} else {
		s.prefix[n+1] = branchNode(copyRange(up.children, 1, up.width()))
	}
}

// balanceSuffix makes sure the suffix slot at level n is not empty, borrowing
// the last child of the next level's suffix if necessary.
func (s *assembler[T]) balanceSuffix(n int) {
	if s.suffix[n] != nil {
		return
	}
	if n == s.maxDim {
		s.suffix[n], s.prefix[n] = s.prefix[n], nil
		return
	}
	s.balanceSuffix(n + 1)
	up := s.suffix[n+1]
	last := up.width() - 1
	s.suffix[n] = up.children[last]
	if last == 0 {
		s.suffix[n+1] = nil
		if s.maxDim == n+1 && s.prefix[n+1] == nil {
			s.maxDim = n
		}
	} else {
		s.suffix[n+1] = branchNode(copyRange(up.children, 0, last))
	}
}
