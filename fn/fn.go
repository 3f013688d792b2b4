package fn

import (
	"github.com/wippyai/grip/contract"
)

// Fn wraps a non-nil func(A) R. Fn is a plain value type; copying it copies
// the func value, which stays non-nil, so copy and "move" are both legal and
// the source remains usable after either.
type Fn[A, R any] struct {
	f func(A) R
}

// New wraps f. A nil f is a contract breach; use Try for untrusted input.
func New[A, R any](f func(A) R) Fn[A, R] {
	contract.Assert(f != nil, "fn.New: callable is nil")
	return Fn[A, R]{f: f}
}

// Try wraps f, reporting ok=false when f is nil.
func Try[A, R any](f func(A) R) (Fn[A, R], bool) {
	if f == nil {
		return Fn[A, R]{}, false
	}
	return Fn[A, R]{f: f}, true
}

// Call invokes the held callable.
func (n Fn[A, R]) Call(a A) R {
	contract.Assert(n.f != nil, "fn.Fn: use of zero wrapper")
	return n.f(a)
}

// Underlying returns the held func value. Func values copy, so this is a
// borrowed view only by convention; the wrapper keeps its own non-nil copy.
func (n Fn[A, R]) Underlying() func(A) R {
	contract.Assert(n.f != nil, "fn.Fn: use of zero wrapper")
	return n.f
}

// Swap exchanges the held callables. Both wrappers remain non-empty.
func (n *Fn[A, R]) Swap(other *Fn[A, R]) {
	contract.Assert(n.f != nil && other.f != nil, "fn.Fn.Swap: use of zero wrapper")
	n.f, other.f = other.f, n.f
}

// Take extracts the held func. Func values are copyable, so the source stays
// valid; the function exists for symmetry with TakeOwnedFn.
func Take[A, R any](n Fn[A, R]) func(A) R {
	return n.Underlying()
}

// Thunk wraps a non-nil func() R. Same contract as Fn.
type Thunk[R any] struct {
	f func() R
}

// NewThunk wraps f. A nil f is a contract breach.
func NewThunk[R any](f func() R) Thunk[R] {
	contract.Assert(f != nil, "fn.NewThunk: callable is nil")
	return Thunk[R]{f: f}
}

// TryThunk wraps f, reporting ok=false when f is nil.
func TryThunk[R any](f func() R) (Thunk[R], bool) {
	if f == nil {
		return Thunk[R]{}, false
	}
	return Thunk[R]{f: f}, true
}

// Call invokes the held callable.
func (n Thunk[R]) Call() R {
	contract.Assert(n.f != nil, "fn.Thunk: use of zero wrapper")
	return n.f()
}

// Underlying returns the held func value.
func (n Thunk[R]) Underlying() func() R {
	contract.Assert(n.f != nil, "fn.Thunk: use of zero wrapper")
	return n.f
}

// Swap exchanges the held callables.
func (n *Thunk[R]) Swap(other *Thunk[R]) {
	contract.Assert(n.f != nil && other.f != nil, "fn.Thunk.Swap: use of zero wrapper")
	n.f, other.f = other.f, n.f
}

// Proc wraps a non-nil func(A). Same contract as Fn.
type Proc[A any] struct {
	f func(A)
}

// NewProc wraps f. A nil f is a contract breach.
func NewProc[A any](f func(A)) Proc[A] {
	contract.Assert(f != nil, "fn.NewProc: callable is nil")
	return Proc[A]{f: f}
}

// TryProc wraps f, reporting ok=false when f is nil.
func TryProc[A any](f func(A)) (Proc[A], bool) {
	if f == nil {
		return Proc[A]{}, false
	}
	return Proc[A]{f: f}, true
}

// Call invokes the held callable.
func (n Proc[A]) Call(a A) {
	contract.Assert(n.f != nil, "fn.Proc: use of zero wrapper")
	n.f(a)
}

// Underlying returns the held func value.
func (n Proc[A]) Underlying() func(A) {
	contract.Assert(n.f != nil, "fn.Proc: use of zero wrapper")
	return n.f
}

// Swap exchanges the held callables.
func (n *Proc[A]) Swap(other *Proc[A]) {
	contract.Assert(n.f != nil && other.f != nil, "fn.Proc.Swap: use of zero wrapper")
	n.f, other.f = other.f, n.f
}
