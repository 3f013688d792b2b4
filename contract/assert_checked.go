//go:build !gripnocheck

package contract

// Checked reports whether assertions are compiled in.
const Checked = true

// Assert panics with a *Violation when cond is false.
func Assert(cond bool, detail string) {
	if !cond {
		fail(detail)
	}
}

// Assertf is Assert with a formatted detail message. The message is only
// built on violation.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		failf(format, args...)
	}
}
