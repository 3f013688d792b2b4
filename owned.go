package grip

import (
	"github.com/wippyai/grip/contract"
)

// Owned is an exclusive, non-nil owner of a T with a pluggable deleter.
//
// Owned cannot be copied: a copy would produce two exclusive owners, and an
// implicit move would leave the source holding nil, breaking its own
// invariant. The embedded no-copy guard makes go vet reject copies, and every
// method takes a pointer receiver. The only sanctioned transfer is
//
//	p, drop := TakeOwned(o)
//	o2 := AdoptOwned(p, drop)
//
// After TakeOwned or Dispose the wrapper is dead; any further access is a
// contract breach.
type Owned[T any] struct {
	nc  noCopy
	ptr *T
	del func(*T)
}

// Own allocates a new T initialized to v and wraps it with no deleter.
func Own[T any](v T) *Owned[T] {
	return &Owned[T]{ptr: &v}
}

// OwnWith allocates a new T initialized to v and wraps it with drop as its
// destruction policy. drop runs once, on Dispose.
func OwnWith[T any](v T, drop func(*T)) *Owned[T] {
	return &Owned[T]{ptr: &v, del: drop}
}

// AdoptOwned takes exclusive ownership of an existing allocation. p must not
// be nil; a nil p is a contract breach. drop may be nil.
func AdoptOwned[T any](p *T, drop func(*T)) *Owned[T] {
	contract.Assert(p != nil, "grip.AdoptOwned: pointer is nil")
	return &Owned[T]{ptr: p, del: drop}
}

// TryAdoptOwned is the nil-tolerant form of AdoptOwned: ok=false when p is
// nil, in which case no owner exists and drop is not retained.
func TryAdoptOwned[T any](p *T, drop func(*T)) (*Owned[T], bool) {
	if p == nil {
		return nil, false
	}
	return &Owned[T]{ptr: p, del: drop}, true
}

// Get returns the raw pointer. Never nil. Ownership stays with the wrapper.
func (o *Owned[T]) Get() *T {
	contract.Assert(o.ptr != nil, "grip.Owned: use of zero or dead wrapper")
	return o.ptr
}

// Deref returns a copy of the owned value.
func (o *Owned[T]) Deref() T {
	return *o.Get()
}

// Set stores v into the owned allocation.
func (o *Owned[T]) Set(v T) {
	*o.Get() = v
}

// Underlying returns a borrowed view of the owned pointer. The deleter stays
// with the wrapper; use TakeOwned to transfer both out.
func (o *Owned[T]) Underlying() *T {
	return o.Get()
}

// Deleter returns the active destruction policy. May be nil when the owner
// was built by Own. This accessor exists only on the exclusive kind.
func (o *Owned[T]) Deleter() func(*T) {
	contract.Assert(o.ptr != nil, "grip.Owned.Deleter: use of zero or dead wrapper")
	return o.del
}

// Dispose runs the deleter, if any, and kills the wrapper. Disposing twice is
// a contract breach.
func (o *Owned[T]) Dispose() {
	p, drop := TakeOwned(o)
	if drop != nil {
		drop(p)
	}
}

// Swap exchanges the owned allocations and their deleters. Both owners
// remain live and non-nil.
func (o *Owned[T]) Swap(other *Owned[T]) {
	contract.Assert(o.ptr != nil && other.ptr != nil, "grip.Owned.Swap: use of zero or dead wrapper")
	o.ptr, other.ptr = other.ptr, o.ptr
	o.del, other.del = other.del, o.del
}

// Equal reports whether both owners hold the same address. Two live owners
// holding the same address indicate a bug elsewhere, but the comparison
// itself is well defined.
func (o *Owned[T]) Equal(other *Owned[T]) bool {
	return o.Get() == other.Get()
}

// EqualPtr reports whether the owner holds p. Always false for nil p.
func (o *Owned[T]) EqualPtr(p *T) bool {
	return o.Get() == p
}

// TakeOwned consumes o, transferring the allocation and its deleter to the
// caller. o is dead afterward: every later method call on it panics in
// checked builds. This is the only way to move exclusive ownership out;
// re-wrap with AdoptOwned.
func TakeOwned[T any](o *Owned[T]) (*T, func(*T)) {
	contract.Assert(o.ptr != nil, "grip.TakeOwned: use of zero or dead wrapper")
	p, drop := o.ptr, o.del
	o.ptr, o.del = nil, nil
	return p, drop
}

// ConvertOwned consumes o and re-wraps it as an owner of a compatible, more
// general type. up must be a pure projection of a non-nil pointer; the source
// invariant carries over without re-validation. The deleter is adapted so
// disposing the result still releases the original allocation.
func ConvertOwned[B, D any](o *Owned[D], up func(*D) *B) *Owned[B] {
	p, drop := TakeOwned(o)
	var dropB func(*B)
	if drop != nil {
		dropB = func(*B) { drop(p) }
	}
	return &Owned[B]{ptr: up(p), del: dropB}
}
