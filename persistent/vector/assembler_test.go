package vector

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ints returns lo, lo+1, …, hi-1.
func ints(lo, hi int) []int {
	xs := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		xs = append(xs, i)
	}
	return xs
}

func TestSliceSmall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := Of(1, 2, 3, 4, 5)
	assert.Equal(t, []int{2, 3, 4}, v.Slice(1, 4).ToSlice())
	assert.True(t, v.Slice(2, 2).IsEmpty())
	assert.Equal(t, v, v.Slice(0, 5))
}

func TestSliceRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	const n = 40000
	xs := ints(0, n)
	v := FromSlice(xs)
	bounds := []int{0, 1, 31, 32, 33, 63, 64, 1000, 1023, 1024, 1025, 2047, 5000, 32767, 32768, 32769, 39999, n}
	for _, lo := range bounds {
		for _, hi := range bounds {
			if hi < lo {
				continue
			}
			w := v.Slice(lo, hi)
			require.Equal(t, hi-lo, w.Len())
			if w.root != nil {
				w.root.check()
			}
			if got := w.ToSlice(); !slices.Equal(xs[lo:hi], got) {
				t.Fatalf("slice [%d,%d) mismatch (-want +got):\n%s", lo, hi, cmp.Diff(xs[lo:hi], got))
			}
			for i := 0; i < w.Len(); i += 1 + w.Len()/100 {
				if w.Get(i) != lo+i {
					t.Fatalf("slice [%d,%d): expected element %d at index %d, have %d", lo, hi, lo+i, i, w.Get(i))
				}
			}
		}
	}
}

func TestSliceShares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := Tabulate(5000, func(i int) int { return i })
	w := v.Slice(10, 4990)
	// the middle of v is made of full blocks, which must not be copied
	require.Equal(t, 3, w.root.depth, printVec(w.Take(40)))
	assert.Same(t, v.root.data, w.root.data)
	assert.Same(t, v.root.prefix[2], w.root.prefix[2])
}

func TestSliceOfSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := Tabulate(10000, func(i int) int { return i })
	for w, lo := v, 0; w.Len() > 20; {
		w = w.Slice(7, w.Len()-(w.Len()/3))
		lo += 7
		require.Equal(t, lo, w.Get(0))
		w.root.check()
	}
}

func TestConcatSmall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := Of(1, 2, 3).Concat(Of(4, 5, 6))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, v.ToSlice())
	assert.Equal(t, 1, v.root.depth)
}

func TestConcatSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	sizes := []int{1, 5, 31, 32, 33, 100, 1000, 1024, 1025, 3000, 33000}
	for _, m := range sizes {
		for _, n := range sizes {
			a := FromSlice(ints(0, m))
			b := FromSlice(ints(m, m+n))
			c := a.Concat(b)
			require.Equal(t, m+n, c.Len())
			c.root.check()
			for i := 0; i < c.Len(); i++ {
				if c.Get(i) != i {
					t.Fatalf("%d ++ %d: expected element %d at index %d, have %d%s", m, n, i, i, c.Get(i), printVec(c.Slice(max(0, i-40), min(c.Len(), i+40))))
				}
			}
		}
	}
}

func TestConcatMisaligned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	// a partial leaf at the end of a, followed by a full leaf of b, forces
	// the assembler to fall back to a builder
	a := FromSlice(ints(0, 100))
	b := FromSlice(ints(100, 2100))
	c := a.Concat(b)
	if diff := cmp.Diff(ints(0, 2100), c.ToSlice()); diff != "" {
		t.Errorf("concatenation mismatch (-want +got):\n%s", diff)
	}
	// slices of both sides, so that pieces of different levels meet
	d := b.Slice(900, 2000).Concat(a.Slice(17, 64)).Concat(b.Slice(0, 1500))
	want := append(append(ints(1000, 2100), ints(17, 64)...), ints(100, 1600)...)
	if diff := cmp.Diff(want, d.ToSlice()); diff != "" {
		t.Errorf("concatenation of slices mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatSmallFront(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	b := FromSlice(ints(10, 50000))
	c := Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9).Concat(b)
	require.Equal(t, 50000, c.Len())
	for i := 0; i < c.Len(); i += 7 {
		require.Equal(t, i, c.Get(i))
	}
	// the small receiver is prepended, which keeps the suffix arrays of b
	require.Equal(t, b.root.depth, c.root.depth)
	assert.Same(t, b.root.suffix[3], c.root.suffix[3])
}

func TestConcatLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	a := FromSlice(ints(0, 77))
	b := FromSlice(ints(77, 1500))
	c := FromSlice(ints(1500, 5000))
	left := a.Concat(b).Concat(c)
	right := a.Concat(b.Concat(c))
	assert.True(t, Equal(left, right), "concatenation must be associative")
	e := Empty[int]()
	assert.True(t, Equal(e.Concat(a), a))
	assert.True(t, Equal(a.Concat(e), a))
	assert.Equal(t, a, a.Concat(e))
	// slicing undoes concatenation
	ab := a.Concat(b)
	assert.True(t, Equal(ab.Take(a.Len()), a))
	assert.True(t, Equal(ab.Drop(a.Len()), b))
}
