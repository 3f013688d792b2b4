// Package fn provides non-empty callable wrappers, the callable-family
// counterpart of the grip handle wrappers.
//
// # Callable Kinds
//
// Go has no variadic type parameters, so signatures render as a small kind
// family:
//
//	Fn[A, R]       func(A) R
//	Thunk[R]       func() R
//	Proc[A]        func(A)
//	OwnedFn[A, R]  func(A) R owning a non-duplicable resource
//
// The first three are plain value types: a func value is copyable, so the
// wrappers copy freely and a "move" is just a copy — the source stays valid
// and non-empty afterward. That behavior is deliberate and relied upon; do
// not tighten it.
//
// OwnedFn mirrors grip.Owned instead: the held closure owns something that
// must not be duplicated, so copying is rejected by go vet and the only
// transfer is the consuming extraction
//
//	f := fn.TakeOwnedFn(o) // o is dead after this line
//	o2 := fn.NewOwnedFn(f)
//
// # The Non-Empty Invariant
//
// A wrapped func is non-nil for the wrapper's entire live span. Constructing
// from a nil func, or calling a taken OwnedFn, is a contract breach (panic in
// checked builds, omitted under gripnocheck). The Try* factories are the
// nil-tolerant entry points.
package fn
