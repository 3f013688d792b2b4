package grip

import (
	"github.com/wippyai/grip/contract"
)

// Ref is a non-owning, non-nil reference to a T.
//
// Ref is a plain value type and is freely copyable: a copy of a non-nil
// pointer is non-nil, so every copy upholds the invariant. Comparing a Ref
// against nil is a compile error, which is the strongest possible form of
// "equality against nil is always false".
//
// The zero Ref has no pointer and is outside the contract; every accessor
// asserts against it.
type Ref[T any] struct {
	ptr *T
}

// NewRef wraps p. p must not be nil; a nil p is a contract breach.
// Use TryRef to convert untrusted input.
func NewRef[T any](p *T) Ref[T] {
	contract.Assert(p != nil, "grip.NewRef: pointer is nil")
	return Ref[T]{ptr: p}
}

// TryRef wraps p, reporting ok=false when p is nil. A nil input is absence,
// not an error; this is the only nil-tolerant entry point.
func TryRef[T any](p *T) (Ref[T], bool) {
	if p == nil {
		return Ref[T]{}, false
	}
	return Ref[T]{ptr: p}, true
}

// Get returns the raw pointer. Never nil.
func (r Ref[T]) Get() *T {
	contract.Assert(r.ptr != nil, "grip.Ref: use of zero or dead wrapper")
	return r.ptr
}

// Deref returns a copy of the pointed-to value.
func (r Ref[T]) Deref() T {
	return *r.Get()
}

// Set stores v through the reference.
func (r Ref[T]) Set(v T) {
	*r.Get() = v
}

// Underlying returns a borrowed view of the wrapped pointer.
// For a non-owning reference this coincides with Get.
func (r Ref[T]) Underlying() *T {
	return r.Get()
}

// Swap exchanges the inner pointers. Both references remain non-nil.
func (r *Ref[T]) Swap(other *Ref[T]) {
	contract.Assert(r.ptr != nil && other.ptr != nil, "grip.Ref.Swap: use of zero or dead wrapper")
	r.ptr, other.ptr = other.ptr, r.ptr
}

// Equal reports whether both references point at the same address.
func (r Ref[T]) Equal(other Ref[T]) bool {
	return r.Get() == other.Get()
}

// EqualPtr reports whether the reference points at p. Always false for a nil
// p: a live Ref is never nil.
func (r Ref[T]) EqualPtr(p *T) bool {
	return r.Get() == p
}

// TakeRef extracts the raw pointer from r. A non-owning pointer is copyable,
// so extraction does not invalidate anything; the function exists for
// symmetry with TakeOwned and TakeOwnedFn.
func TakeRef[T any](r Ref[T]) *T {
	return r.Get()
}

// ConvertRef converts a reference to a compatible, more general one. up must
// be a pure projection (it receives a non-nil pointer and must return a
// non-nil pointer, e.g. an embedded-field upcast); the source invariant
// carries over without re-validation.
func ConvertRef[B, D any](r Ref[D], up func(*D) *B) Ref[B] {
	return Ref[B]{ptr: up(r.Get())}
}
