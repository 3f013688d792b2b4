// Package grip provides wrapper types that guarantee a held pointer, owning
// handle, or callable is never nil, while preserving the ownership semantics
// of the handle they wrap.
//
// # Architecture Overview
//
// The module is organized into three packages:
//
//	grip/          Root package: the handle-wrapper family
//	├── contract/  Invariant assertion primitive (panic on breach)
//	└── fn/        Non-empty callable wrappers
//
// # Ownership Kinds
//
// Each ownership kind is a distinct type; what a wrapper can do is decided by
// its method set, not by runtime checks:
//
//	Ref[T]     non-owning reference; freely copyable
//	Owned[T]   exclusive owner with a pluggable deleter; copying is rejected
//	           by go vet, transfer goes through TakeOwned/AdoptOwned
//	Shared[T]  reference-counted owner; Clone copies, Release drops
//	Weak[T]    non-owning observer of a shared allocation
//
// Only Owned exposes Deleter. Only Shared and Weak expose UseCount and the
// owner-identity operations (OwnerBefore, OwnerEqual, OwnerHash). An
// operation an ownership kind does not support simply does not exist on it.
//
// # The Non-Nil Invariant
//
// A wrapper's inner pointer is non-nil for its entire live span. Violating a
// precondition (nil construction, use after take/dispose/release) is a
// programmer error: checked builds panic with a *contract.Violation, builds
// tagged gripnocheck omit the checks entirely. The Try* factories are the
// only bridge from possibly-nil input into the non-nil domain:
//
//	r, ok := grip.TryRef(p)
//	if !ok {
//	    // p was nil; no wrapper exists
//	}
//
// # Extraction
//
// Exclusive ownership cannot be copied, and implicitly moving it out would
// leave the source holding nil, breaking its own invariant. The only
// sanctioned transfer is the explicit consuming extraction:
//
//	o := grip.Own(42)
//	p, drop := grip.TakeOwned(o) // o is dead after this line
//	o2 := grip.AdoptOwned(p, drop)
//
// Ref and Shared transfer freely: copying a non-nil pointer is non-nil, and a
// Shared value is itself the counted reference (Clone is the copy that
// increments the count, plain assignment just passes the reference along).
//
// # Thread Safety
//
// Shared and Weak counts are atomic; everything else is a plain value with no
// synchronization. A single wrapper value is not safe for concurrent
// mutation.
package grip
