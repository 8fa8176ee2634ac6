/*
Package fp holds small helpers for working with functions as values.

The container types live in sub-packages: persistent/vector for vectors, maybe
and result for optional values and values of failing computations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package fp

// Identity returns its argument.
func Identity[T any](x T) T {
	return x
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Constant returns a function of one argument which ignores its argument and
// always returns a.
func Constant[A, T any](a T) func(A) T {
	return func(A) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
