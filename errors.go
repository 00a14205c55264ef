package fluentstmt

import (
	"errors"
	"fmt"
)

// Standard sentinel errors reported by the opt-in strict validation layer.
// The builders themselves never return errors; these surface only through
// sql.Validate and friends.
var (
	// ErrUnbalancedGroup is returned when a statement closes a group that
	// was never opened, or leaves an opened group unclosed.
	ErrUnbalancedGroup = errors.New("fluentstmt: unbalanced condition group")

	// ErrDanglingConnector is returned when a WHERE clause ends with a
	// logical connector that is not followed by a condition.
	ErrDanglingConnector = errors.New("fluentstmt: dangling connector")
)

// ValidationError describes a strict-mode check failure for a rendered
// statement. It wraps one of the sentinel errors above.
type ValidationError struct {
	Stmt   string // the rendered statement text
	Pos    int    // byte offset of the offending token, -1 if unknown
	reason error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at offset %d", e.reason, e.Pos)
	}
	return e.reason.Error()
}

// Is reports whether the target matches the wrapped sentinel error.
func (e *ValidationError) Is(err error) bool {
	return errors.Is(e.reason, err)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.reason
}

// NewValidationError returns a ValidationError wrapping the given sentinel.
func NewValidationError(stmt string, pos int, reason error) *ValidationError {
	return &ValidationError{Stmt: stmt, Pos: pos, reason: reason}
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}
