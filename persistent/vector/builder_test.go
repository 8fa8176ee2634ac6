package vector

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSmall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	var b Builder[int]
	for i := 0; i < 10; i++ {
		b.Push(i)
	}
	require.Equal(t, 10, b.Len())
	v := b.Vector()
	assert.Equal(t, 1, v.root.depth)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v.ToSlice())
	assert.Equal(t, 0, b.Len(), "builder should be empty after Vector()")
}

func TestBuilderDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, c := range []struct{ n, depth int }{
		{1, 1}, {32, 1}, {33, 2}, {1024, 2}, {1025, 3}, {32768, 3}, {32769, 4}, {100000, 4},
	} {
		v := Tabulate(c.n, func(i int) int { return i })
		if v.root.depth != c.depth {
			t.Errorf("expected vector of %d elements to have depth %d, has %d", c.n, c.depth, v.root.depth)
			continue
		}
		for i := 0; i < c.n; i += 1 + c.n/500 {
			if v.Get(i) != i {
				t.Fatalf("expected element %d at index %d, have %d", i, i, v.Get(i))
			}
		}
		assert.Equal(t, c.n-1, v.Get(c.n-1))
	}
}

func TestBuilderPushAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	xs := make([]int, 3333)
	for i := range xs {
		xs[i] = i * 3
	}
	var b Builder[int]
	b.PushAll(xs[:7]...).PushAll(xs[7:100]...).PushAll(xs[100:]...)
	v := b.Vector()
	if diff := cmp.Diff(xs, v.ToSlice()); diff != "" {
		t.Errorf("PushAll mismatch (-want +got):\n%s", diff)
	}
	xs[0] = 99
	assert.Equal(t, 0, v.Get(0), "vector must not alias the pushed slice")
}

func TestBuilderAppendVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, n := range []int{5, 32, 100, 1024, 2000, 40000} {
		v := Tabulate(n, func(i int) int { return i }).Drop(3)
		b := NewBuilder[int]()
		b.AppendVector(v) // seeds the builder
		for i := n; i < n+1500; i++ {
			b.Push(i)
		}
		w := b.Vector()
		require.Equal(t, n+1500-3, w.Len())
		for i := 0; i < w.Len(); i++ {
			if w.Get(i) != i+3 {
				t.Fatalf("n=%d: expected element %d at index %d, have %d", n, i+3, i, w.Get(i))
			}
		}
		// v must be unchanged
		assert.Equal(t, n-3, v.Len())
		assert.Equal(t, n-1, v.Get(v.Len()-1))
	}
}

func TestBuilderAppendVectorToNonEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	var b Builder[int]
	b.PushAll(0, 1, 2)
	b.AppendVector(Tabulate(2000, func(i int) int { return i + 3 }))
	b.AppendVector(Empty[int]())
	v := b.Vector()
	require.Equal(t, 2003, v.Len())
	for i := 0; i < v.Len(); i++ {
		if v.Get(i) != i {
			t.Fatalf("expected element %d at index %d, have %d", i, i, v.Get(i))
		}
	}
}

func TestBuilderAppendSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	var b Builder[string]
	b.AppendSeq(slices.Values([]string{"a", "b", "c"}))
	v := b.Vector()
	assert.Equal(t, "[a b c]", v.String())
}

func TestBuilderReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	var b Builder[int]
	for i := 0; i < 1000; i++ {
		b.Push(i)
	}
	v := b.Vector()
	b.Push(-1)
	w := b.Vector()
	assert.Equal(t, 1000, v.Len())
	assert.Equal(t, 999, v.Get(999))
	assert.Equal(t, []int{-1}, w.ToSlice())
	b.Push(1)
	b.Reset()
	assert.True(t, b.Vector().IsEmpty())
}
