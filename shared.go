package grip

import (
	"sync/atomic"

	"github.com/wippyai/grip/contract"
)

// ownerSeq hands out allocation ids. Ids are process-unique and monotone,
// which gives owner-identity comparison a strict total order without
// comparing raw addresses (Go defines no order over pointers).
var ownerSeq atomic.Uint64

// control is the type-erased control block behind Shared and Weak handles.
// The strong count is the number of owning references; the drop hook runs
// exactly once, when the strong count reaches zero.
type control struct {
	drop   func()
	id     uint64
	strong atomic.Int64
	weak   atomic.Int64
}

// Owner identifies a shared allocation; it is implemented by Shared and Weak.
// Owner-identity comparison is about which allocation a handle co-owns or
// observes, not which address it dereferences to: two aliases of one
// allocation are owner-equal even when they point at different fields.
type Owner interface {
	owner() *control
}

// Shared is a reference-counted, non-nil owner of a T.
//
// A Shared value is itself the counted reference: passing or assigning it
// hands the same reference along without touching the count. Clone is the
// sanctioned copy (count +1) and Release the destruction (count -1, drop
// hook at zero). Releasing kills the local handle; any later access is a
// contract breach.
type Shared[T any] struct {
	ctl *control
	ptr *T
}

// Share allocates a new T initialized to v and wraps it with a count of one.
func Share[T any](v T) Shared[T] {
	return ShareWith(v, nil)
}

// ShareWith is Share with a destruction hook that runs when the last owning
// reference releases.
func ShareWith[T any](v T, drop func(*T)) Shared[T] {
	p := &v
	ctl := &control{id: ownerSeq.Add(1)}
	if drop != nil {
		ctl.drop = func() { drop(p) }
	}
	ctl.strong.Store(1)
	return Shared[T]{ctl: ctl, ptr: p}
}

// TryShare wraps an existing allocation with a fresh count, reporting
// ok=false when p is nil. drop is not retained on absence.
func TryShare[T any](p *T, drop func(*T)) (Shared[T], bool) {
	if p == nil {
		return Shared[T]{}, false
	}
	ctl := &control{id: ownerSeq.Add(1)}
	if drop != nil {
		ctl.drop = func() { drop(p) }
	}
	ctl.strong.Store(1)
	return Shared[T]{ctl: ctl, ptr: p}, true
}

// Get returns the raw pointer. Never nil. The count is unaffected.
func (s Shared[T]) Get() *T {
	contract.Assert(s.ctl != nil, "grip.Shared: use of zero or dead wrapper")
	return s.ptr
}

// Deref returns a copy of the shared value.
func (s Shared[T]) Deref() T {
	return *s.Get()
}

// Set stores v into the shared allocation. Visible through every co-owner.
func (s Shared[T]) Set(v T) {
	*s.Get() = v
}

// Clone returns a new owning reference to the same allocation, incrementing
// the shared count by exactly one.
func (s Shared[T]) Clone() Shared[T] {
	contract.Assert(s.ctl != nil, "grip.Shared.Clone: use of zero or dead wrapper")
	s.ctl.strong.Add(1)
	return Shared[T]{ctl: s.ctl, ptr: s.ptr}
}

// Release drops this owning reference, decrementing the shared count by
// exactly one and running the drop hook when it reaches zero. The handle is
// dead afterward.
func (s *Shared[T]) Release() {
	contract.Assert(s.ctl != nil, "grip.Shared.Release: use of zero or dead wrapper")
	ctl := s.ctl
	s.ctl, s.ptr = nil, nil

	n := ctl.strong.Add(-1)
	contract.Assertf(n >= 0, "grip.Shared.Release: count underflow (%d)", n)
	if n == 0 && ctl.drop != nil {
		ctl.drop()
		ctl.drop = nil
	}
}

// UseCount returns the current number of owning references. This accessor
// exists only on the shared kinds.
func (s Shared[T]) UseCount() int64 {
	contract.Assert(s.ctl != nil, "grip.Shared.UseCount: use of zero or dead wrapper")
	return s.ctl.strong.Load()
}

// Downgrade returns a non-owning observer of the same allocation. The strong
// count is unaffected.
func (s Shared[T]) Downgrade() Weak[T] {
	contract.Assert(s.ctl != nil, "grip.Shared.Downgrade: use of zero or dead wrapper")
	s.ctl.weak.Add(1)
	return Weak[T]{ctl: s.ctl, ptr: s.ptr}
}

// Swap exchanges the two handles' allocations. Counts are unaffected: each
// reference keeps owning exactly one allocation, they merely trade places.
func (s *Shared[T]) Swap(other *Shared[T]) {
	contract.Assert(s.ctl != nil && other.ctl != nil, "grip.Shared.Swap: use of zero or dead wrapper")
	s.ctl, other.ctl = other.ctl, s.ctl
	s.ptr, other.ptr = other.ptr, s.ptr
}

// Equal reports whether both handles dereference to the same address. For
// allocation identity use OwnerEqual, which distinguishes aliases from
// separate allocations that happen to share a pointee.
func (s Shared[T]) Equal(other Shared[T]) bool {
	return s.Get() == other.Get()
}

// EqualPtr reports whether the handle dereferences to p. Always false for
// nil p.
func (s Shared[T]) EqualPtr(p *T) bool {
	return s.Get() == p
}

func (s Shared[T]) owner() *control {
	contract.Assert(s.ctl != nil, "grip.Shared: use of zero or dead wrapper")
	return s.ctl
}

// OwnerBefore reports whether this handle's allocation orders before other's.
// The order is strict, total, and consistent with OwnerEqual and OwnerHash;
// other may be a Shared or Weak handle of any element type.
func (s Shared[T]) OwnerBefore(other Owner) bool {
	return s.owner().id < other.owner().id
}

// OwnerEqual reports whether both handles share one allocation.
func (s Shared[T]) OwnerEqual(other Owner) bool {
	return s.owner().id == other.owner().id
}

// OwnerHash returns a hash of the allocation identity, consistent with
// OwnerEqual across Shared and Weak handles.
func (s Shared[T]) OwnerHash() uint64 {
	return mix64(s.owner().id)
}

// Alias returns a new owning reference to the same allocation whose pointee
// is a projection of the original (e.g. a field of the shared struct). The
// shared count increments by one; the projected pointer keeps the whole
// allocation alive. up must be a pure projection of a non-nil pointer.
func Alias[B, D any](s Shared[D], up func(*D) *B) Shared[B] {
	ctl := s.owner()
	ctl.strong.Add(1)
	return Shared[B]{ctl: ctl, ptr: up(s.ptr)}
}

// mix64 finalizes an id into a well-distributed hash (splitmix64 finalizer).
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
