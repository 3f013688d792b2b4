package contract

import (
	"fmt"

	"go.uber.org/zap"
)

// Violation is the panic payload for a contract breach. It implements error
// so recover sites can match it with errors.As.
type Violation struct {
	Detail string
}

func (v *Violation) Error() string {
	return "contract violation: " + v.Detail
}

// fail logs the violation and panics. Never returns.
func fail(detail string) {
	Logger().Error("contract violation",
		zap.String("detail", detail),
		zap.Stack("stack"),
	)
	panic(&Violation{Detail: detail})
}

func failf(format string, args ...any) {
	fail(fmt.Sprintf(format, args...))
}
