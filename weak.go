package grip

import (
	"github.com/wippyai/grip/contract"
)

// Weak is a non-owning observer of a shared allocation. It does not keep the
// value alive: once every owning reference has released, Upgrade reports
// absence. Weak carries the non-nil invariant on its control block, not on
// the value — a live Weak always refers to a real allocation, dead or alive.
type Weak[T any] struct {
	ctl *control
	ptr *T
}

// Upgrade attempts to reacquire ownership, reporting ok=false once the
// allocation has no owning references left. On success the shared count
// increments by one. Racing with the last Release is safe: the count never
// revives from zero.
func (w Weak[T]) Upgrade() (Shared[T], bool) {
	contract.Assert(w.ctl != nil, "grip.Weak.Upgrade: use of zero or dead wrapper")
	for {
		n := w.ctl.strong.Load()
		if n == 0 {
			return Shared[T]{}, false
		}
		if w.ctl.strong.CompareAndSwap(n, n+1) {
			return Shared[T]{ctl: w.ctl, ptr: w.ptr}, true
		}
	}
}

// Expired reports whether the observed allocation has been dropped.
func (w Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount returns the current number of owning references, zero once the
// allocation has been dropped.
func (w Weak[T]) UseCount() int64 {
	contract.Assert(w.ctl != nil, "grip.Weak.UseCount: use of zero or dead wrapper")
	return w.ctl.strong.Load()
}

// Clone returns a new observer of the same allocation.
func (w Weak[T]) Clone() Weak[T] {
	contract.Assert(w.ctl != nil, "grip.Weak.Clone: use of zero or dead wrapper")
	w.ctl.weak.Add(1)
	return Weak[T]{ctl: w.ctl, ptr: w.ptr}
}

// Release drops this observer. The handle is dead afterward; the strong
// count is unaffected.
func (w *Weak[T]) Release() {
	contract.Assert(w.ctl != nil, "grip.Weak.Release: use of zero or dead wrapper")
	ctl := w.ctl
	w.ctl, w.ptr = nil, nil

	n := ctl.weak.Add(-1)
	contract.Assertf(n >= 0, "grip.Weak.Release: count underflow (%d)", n)
}

// Swap exchanges the two observers' allocations.
func (w *Weak[T]) Swap(other *Weak[T]) {
	contract.Assert(w.ctl != nil && other.ctl != nil, "grip.Weak.Swap: use of zero or dead wrapper")
	w.ctl, other.ctl = other.ctl, w.ctl
	w.ptr, other.ptr = other.ptr, w.ptr
}

func (w Weak[T]) owner() *control {
	contract.Assert(w.ctl != nil, "grip.Weak: use of zero or dead wrapper")
	return w.ctl
}

// OwnerBefore reports whether this observer's allocation orders before
// other's, consistent with Shared.OwnerBefore.
func (w Weak[T]) OwnerBefore(other Owner) bool {
	return w.owner().id < other.owner().id
}

// OwnerEqual reports whether both handles refer to one allocation. A Weak
// observer is owner-equal to every Shared handle of its allocation.
func (w Weak[T]) OwnerEqual(other Owner) bool {
	return w.owner().id == other.owner().id
}

// OwnerHash returns a hash of the allocation identity, consistent with
// Shared.OwnerHash.
func (w Weak[T]) OwnerHash() uint64 {
	return mix64(w.owner().id)
}
