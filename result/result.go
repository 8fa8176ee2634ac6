/*
Package result provides values of computations which may fail.

A Result[T] holds either a value of type T (Ok) or an error (Err). Checked
variants of operations which would otherwise panic return a Result.

*/
package result

import (
	"github.com/fp4ts/fp4ts-sub007/maybe"
)

// Result is either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	// Get unpacks the result in the usual Go style.
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps x.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps err. err must not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of creates a result from a Go-style (value, error) return pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// ToMaybe drops the error of r.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	v, err := r.Get()
	return maybe.Of(v, err == nil)
}

// FromMaybe converts m to a result, with err for Nothing.
func FromMaybe[T any](m maybe.Maybe[T], err error) Result[T] {
	if v, ok := m.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// Map applies f to the value of r, if any.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Matching --------------------------------------------------------------

// Matcher helps to switch over the two cases of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
