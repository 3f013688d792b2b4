// Package contract provides the invariant assertion primitive shared by the
// grip wrapper types.
//
// A contract violation is a programmer error, not a runtime condition: nil
// construction, use of a wrapper after it was taken or disposed, an empty
// callable. There is no recoverable error path. Assert panics with a
// *Violation in checked builds; callers that want a recoverable outcome must
// validate up front (the Try* factories in the grip and fn packages are the
// sanctioned way to do that).
//
// # Unchecked builds
//
// Building with -tags gripnocheck compiles every assertion to a no-op. The
// invariants still hold for correct programs; for incorrect ones the behavior
// is undefined (a nil dereference at some later point, at best). This is the
// deliberate release-mode trade: zero check cost in exchange for no diagnosis.
//
// # Logging
//
// Violations are logged through the package logger before panicking. The
// logger is a no-op by default:
//
//	contract.SetLogger(logger)
package contract
