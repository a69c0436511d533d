// Package invariant reports precondition failures: a caller handed an
// operation a value outside its documented domain. These are bugs in the
// caller or an inconsistent schema, never recoverable data conditions.
package invariant

import (
	"errors"
	"fmt"
)

// Violation is returned when an operation's precondition does not hold.
type Violation struct {
	Message string
}

func (e *Violation) Error() string {
	return "invariant violation: " + e.Message
}

// Errorf formats a new Violation.
func Errorf(format string, args ...any) *Violation {
	return &Violation{Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is, or wraps, a Violation.
func Is(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}
