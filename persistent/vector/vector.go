package vector

import (
	"fmt"
	"strings"

	fp "github.com/fp4ts/fp4ts-sub007"
	"github.com/fp4ts/fp4ts-sub007/maybe"
	"github.com/fp4ts/fp4ts-sub007/result"
)

// Vector is an immutable sequence of elements of type T. The zero value is the
// empty vector, ready to use. Vectors are values: copying a vector is cheap and
// copies share all of their structure.
type Vector[T any] struct {
	root *trie[T] // nil for the empty vector
}

// Empty returns the empty vector. It does not allocate.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// Of creates a vector holding xs.
func Of[T any](xs ...T) Vector[T] {
	return FromSlice(xs)
}

// FromSlice creates a vector holding the elements of xs. xs is copied.
func FromSlice[T any](xs []T) Vector[T] {
	if len(xs) == 0 {
		return Vector[T]{}
	}
	var b Builder[T]
	return b.PushAll(xs...).Vector()
}

// Fill creates a vector of n copies of x.
func Fill[T any](n int, x T) Vector[T] {
	return Tabulate(n, fp.Constant[int](x))
}

// Tabulate creates a vector of length n with f(i) at position i.
func Tabulate[T any](n int, f func(int) T) Vector[T] {
	var b Builder[T]
	for i := 0; i < n; i++ {
		b.Push(f(i))
	}
	return b.Vector()
}

// Len returns the number of elements in v.
func (v Vector[T]) Len() int {
	if v.root == nil {
		return 0
	}
	return v.root.length
}

// IsEmpty is true for vectors of length 0.
func (v Vector[T]) IsEmpty() bool {
	return v.root == nil
}

// --- Lookup ----------------------------------------------------------------

// Get returns the element at index i. It panics with an error wrapping
// ErrIndexOutOfRange if i is not in [0, Len()).
func (v Vector[T]) Get(i int) T {
	if i < 0 || i >= v.Len() {
		panic(indexError(i, v.Len()))
	}
	return v.root.at(i)
}

// GetOption returns the element at index i, or Nothing if i is out of range.
func (v Vector[T]) GetOption(i int) maybe.Maybe[T] {
	if i < 0 || i >= v.Len() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.root.at(i))
}

// TryGet returns the element at index i, or an error wrapping ErrIndexOutOfRange.
func (v Vector[T]) TryGet(i int) result.Result[T] {
	if i < 0 || i >= v.Len() {
		return result.Err[T](indexError(i, v.Len()))
	}
	return result.Ok(v.root.at(i))
}

// Head returns the first element of v, if any.
func (v Vector[T]) Head() maybe.Maybe[T] {
	return v.GetOption(0)
}

// Last returns the last element of v, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	return v.GetOption(v.Len() - 1)
}

// --- Update ----------------------------------------------------------------

// Set returns a vector with the element at index i replaced by x. Only the
// arrays along the path to i are copied. Set panics with an error wrapping
// ErrIndexOutOfRange if i is not in [0, Len()).
func (v Vector[T]) Set(i int, x T) Vector[T] {
	if i < 0 || i >= v.Len() {
		panic(indexError(i, v.Len()))
	}
	return Vector[T]{root: v.root.updated(i, x)}
}

// Update returns a vector with the element at index i replaced by f(v.Get(i)).
func (v Vector[T]) Update(i int, f func(T) T) Vector[T] {
	return v.Set(i, f(v.Get(i)))
}

// Append returns a vector with x added after the last element of v.
func (v Vector[T]) Append(x T) Vector[T] {
	var b Builder[T]
	b.initFrom(v.root)
	b.Push(x)
	return b.Vector()
}

// Prepend returns a vector with x put in front of the first element of v.
func (v Vector[T]) Prepend(x T) Vector[T] {
	return Vector[T]{root: v.root.prepended(x)}
}

// --- Slicing and concatenation ---------------------------------------------

// Slice returns a vector of the elements [lo,hi) of v. Sub-arrays of v which
// lie completely inside the range are shared. Slice panics with an error
// wrapping ErrIndexOutOfRange unless 0 ≤ lo ≤ hi ≤ Len().
func (v Vector[T]) Slice(lo, hi int) Vector[T] {
	if lo < 0 || hi > v.Len() || lo > hi {
		panic(rangeError(lo, hi, v.Len()))
	}
	return v.slice(lo, hi)
}

// TrySlice is like Slice, but returns an error instead of panicking.
func (v Vector[T]) TrySlice(lo, hi int) result.Result[Vector[T]] {
	if lo < 0 || hi > v.Len() || lo > hi {
		return result.Err[Vector[T]](rangeError(lo, hi, v.Len()))
	}
	return result.Ok(v.slice(lo, hi))
}

func (v Vector[T]) slice(lo, hi int) Vector[T] {
	if lo == hi {
		return Vector[T]{}
	}
	if lo == 0 && hi == v.Len() {
		return v
	}
	s := newAssembler[T](lo, hi)
	s.considerAll(v.root)
	return Vector[T]{root: s.result()}
}

// Take returns the first n elements of v. n is clamped to [0, Len()].
func (v Vector[T]) Take(n int) Vector[T] {
	return v.slice(0, clamp(n, v.Len()))
}

// Drop returns v without its first n elements. n is clamped to [0, Len()].
func (v Vector[T]) Drop(n int) Vector[T] {
	return v.slice(clamp(n, v.Len()), v.Len())
}

// TakeRight returns the last n elements of v. n is clamped to [0, Len()].
func (v Vector[T]) TakeRight(n int) Vector[T] {
	return v.slice(v.Len()-clamp(n, v.Len()), v.Len())
}

// DropRight returns v without its last n elements. n is clamped to [0, Len()].
func (v Vector[T]) DropRight(n int) Vector[T] {
	return v.slice(0, v.Len()-clamp(n, v.Len()))
}

// SplitAt returns the elements before index n and the elements from n on.
// It panics with an error wrapping ErrIndexOutOfRange unless 0 ≤ n ≤ Len().
func (v Vector[T]) SplitAt(n int) (Vector[T], Vector[T]) {
	if n < 0 || n > v.Len() {
		panic(indexError(n, v.Len()))
	}
	return v.slice(0, n), v.slice(n, v.Len())
}

// Tail returns v without its first element. It panics for an empty vector.
func (v Vector[T]) Tail() Vector[T] {
	if v.root == nil {
		panic(rangeError(1, 0, 0))
	}
	return v.slice(1, v.Len())
}

// Init returns v without its last element. It panics for an empty vector.
func (v Vector[T]) Init() Vector[T] {
	if v.root == nil {
		panic(rangeError(0, -1, 0))
	}
	return v.slice(0, v.Len()-1)
}

func clamp(n, length int) int {
	return min(max(n, 0), length)
}

// Concat returns a vector of the elements of v followed by the elements of w.
// Sub-arrays of both vectors are shared wherever they stay aligned.
// Concat panics with an error wrapping ErrCapacityExceeded if the result would
// grow beyond the maximum length of a vector.
func (v Vector[T]) Concat(w Vector[T]) Vector[T] {
	if w.root == nil {
		return v
	}
	if v.root == nil {
		return w
	}
	n := v.Len() + w.Len()
	if n > maxLength {
		panic(fmt.Errorf("%w: concatenation of %d and %d elements", ErrCapacityExceeded, v.Len(), w.Len()))
	}
	if v.Len() < w.Len()>>bits {
		// v is small compared to w: keep all of w's structure
		r := w.root
		v.root.eachLeaf(true, func(leafs []T) bool {
			for i := len(leafs) - 1; i >= 0; i-- {
				r = r.prepended(leafs[i])
			}
			return true
		})
		return Vector[T]{root: r}
	}
	s := newAssembler[T](0, n)
	s.considerAll(v.root)
	s.considerAll(w.root)
	return Vector[T]{root: s.result()}
}

// --- Derived operations ----------------------------------------------------

// Map creates a vector with f applied to every element of v. The resulting
// vector has the same shape as v. f is called in index order.
func Map[T, U any](v Vector[T], f func(T) U) Vector[U] {
	t := v.root
	if t == nil {
		return Vector[U]{}
	}
	m := &trie[U]{depth: t.depth, length: t.length, cum: t.cum}
	for i := 0; i < t.fragmentCount(); i++ {
		level, node := t.fragment(i)
		m.setFragment(i, mapNode(node, level, f))
	}
	return Vector[U]{root: m}
}

// Filter creates a vector of the elements of v for which pred is true.
func Filter[T any](v Vector[T], pred func(T) bool) Vector[T] {
	var b Builder[T]
	n := 0
	v.root.eachLeaf(false, func(leafs []T) bool {
		for _, x := range leafs {
			if pred(x) {
				b.Push(x)
				n++
			}
		}
		return true
	})
	if n == v.Len() {
		return v
	}
	return b.Vector()
}

// Fold combines all elements of v, in index order, starting with zero.
func Fold[T, A any](v Vector[T], zero A, f func(A, T) A) A {
	acc := zero
	v.root.eachLeaf(false, func(leafs []T) bool {
		for _, x := range leafs {
			acc = f(acc, x)
		}
		return true
	})
	return acc
}

// Reverse returns a vector of the elements of v in reverse order.
func (v Vector[T]) Reverse() Vector[T] {
	if v.Len() <= 1 {
		return v
	}
	var b Builder[T]
	v.root.eachLeaf(true, func(leafs []T) bool {
		for i := len(leafs) - 1; i >= 0; i-- {
			b.Push(leafs[i])
		}
		return true
	})
	return b.Vector()
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (v Vector[T]) IndexFunc(pred func(T) bool) int {
	inx, pos := -1, 0
	v.root.eachLeaf(false, func(leafs []T) bool {
		for i, x := range leafs {
			if pred(x) {
				inx = pos + i
				return false
			}
		}
		pos += len(leafs)
		return true
	})
	return inx
}

// ToSlice copies the elements of v into a new slice.
func (v Vector[T]) ToSlice() []T {
	s := make([]T, 0, v.Len())
	v.root.eachLeaf(false, func(leafs []T) bool {
		s = append(s, leafs...)
		return true
	})
	return s
}

// Equal reports whether v and w hold the same elements in the same order.
func Equal[T comparable](v, w Vector[T]) bool {
	return EqualFunc(v, w, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether v and w have the same length and eq is true for
// every pair of elements at the same index.
func EqualFunc[T, U any](v Vector[T], w Vector[U], eq func(T, U) bool) bool {
	if v.Len() != w.Len() {
		return false
	}
	it := w.Iterator()
	equal := true
	v.root.eachLeaf(false, func(leafs []T) bool {
		for _, x := range leafs {
			it.Next()
			if !eq(x, it.Value()) {
				equal = false
				return false
			}
		}
		return true
	})
	return equal
}

// String formats v like a Go slice, e.g. "[1 2 3]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	v.root.eachLeaf(false, func(leafs []T) bool {
		for _, x := range leafs {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&b, "%v", x)
		}
		return true
	})
	b.WriteByte(']')
	return b.String()
}
