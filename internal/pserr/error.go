// Package pserr defines the shared error taxonomy used by the family
// packages and the root dispatch package. It has no dependency on either,
// so it can sit underneath both without an import cycle.
package pserr

import "fmt"

// Kind discriminates the class of failure a caller-facing Error reports.
type Kind int

const (
	// BadLength means a prefix length fell outside [0, MaxLength], or an
	// increment/decrement was attempted at that bound.
	BadLength Kind = iota
	// BadRange means a prefix range's bounds were inconsistent: lower
	// greater than upper, or lower less than the prefix's own length.
	BadRange
	// ParseError means textual input did not match the expected grammar.
	ParseError
	// AfiMismatch means an operation that requires a shared address
	// family was given operands from different families.
	AfiMismatch
)

func (k Kind) String() string {
	switch k {
	case BadLength:
		return "BadLength"
	case BadRange:
		return "BadRange"
	case ParseError:
		return "ParseError"
	case AfiMismatch:
		return "AfiMismatch"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned across package boundaries. It
// carries a Kind so callers can discriminate failure modes, and wraps an
// underlying cause where one exists.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &Error{Kind: BadLength}) matches any BadLength error. A
// bare Kind is not an error value and cannot be passed to errors.Is.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind, preserving cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the Kind carried by err, and whether err is an *Error at
// all (possibly wrapped further down the chain).
func KindOf(err error) (Kind, bool) {
	var e *Error
	for err != nil {
		if k, ok := err.(*Error); ok {
			e = k
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return 0, false
	}
	return e.Kind, true
}
