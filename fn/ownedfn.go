package fn

import (
	"github.com/wippyai/grip/contract"
)

// OwnedFn wraps a non-nil func(A) R whose closure owns a resource that must
// not be duplicated (an exclusive handle, a one-shot token). It is the
// callable counterpart of grip.Owned: the no-copy guard makes go vet reject
// copies, methods take pointer receivers, and the only transfer is the
// consuming TakeOwnedFn followed by a re-wrap.
type OwnedFn[A, R any] struct {
	nc noCopy
	f  func(A) R
}

// NewOwnedFn wraps f. A nil f is a contract breach.
func NewOwnedFn[A, R any](f func(A) R) *OwnedFn[A, R] {
	contract.Assert(f != nil, "fn.NewOwnedFn: callable is nil")
	return &OwnedFn[A, R]{f: f}
}

// TryOwnedFn wraps f, reporting ok=false when f is nil.
func TryOwnedFn[A, R any](f func(A) R) (*OwnedFn[A, R], bool) {
	if f == nil {
		return nil, false
	}
	return &OwnedFn[A, R]{f: f}, true
}

// Call invokes the held callable. Calling a taken wrapper is a contract
// breach.
func (n *OwnedFn[A, R]) Call(a A) R {
	contract.Assert(n.f != nil, "fn.OwnedFn: use of zero or dead wrapper")
	return n.f(a)
}

// Underlying returns the held func value without transferring ownership of
// the wrapper. The returned value aliases the owned closure; treat it as a
// borrow and prefer TakeOwnedFn for transfer.
func (n *OwnedFn[A, R]) Underlying() func(A) R {
	contract.Assert(n.f != nil, "fn.OwnedFn: use of zero or dead wrapper")
	return n.f
}

// Swap exchanges the held callables. Both wrappers remain non-empty.
func (n *OwnedFn[A, R]) Swap(other *OwnedFn[A, R]) {
	contract.Assert(n.f != nil && other.f != nil, "fn.OwnedFn.Swap: use of zero or dead wrapper")
	n.f, other.f = other.f, n.f
}

// TakeOwnedFn consumes n and returns the held callable. n is dead afterward:
// every later method call on it panics in checked builds. Re-wrap with
// NewOwnedFn to transfer ownership onward.
func TakeOwnedFn[A, R any](n *OwnedFn[A, R]) func(A) R {
	contract.Assert(n.f != nil, "fn.TakeOwnedFn: use of zero or dead wrapper")
	f := n.f
	n.f = nil
	return f
}

// noCopy is embedded in OwnedFn so go vet's copylocks check flags attempts
// to copy it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
