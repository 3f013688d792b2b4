//go:build gripnocheck

package contract

// Checked reports whether assertions are compiled in.
const Checked = false

// Assert is a no-op in unchecked builds.
func Assert(bool, string) {}

// Assertf is a no-op in unchecked builds.
func Assertf(bool, string, ...any) {}
