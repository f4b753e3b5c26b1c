// Package prefixset is the family-agnostic entry point over ipv4 and
// ipv6: it dispatches addresses, prefixes, prefix ranges and sets to the
// right concrete family by textual form or by type, and holds the v4/v6
// halves together for callers who mix both.
package prefixset

import "github.com/go-prefixset/prefixset/internal/pserr"

// Kind classifies an Error.
type Kind = pserr.Kind

// The error kinds addresses, prefixes and sets can fail with.
const (
	BadLength   = pserr.BadLength
	BadRange    = pserr.BadRange
	ParseError  = pserr.ParseError
	AfiMismatch = pserr.AfiMismatch
)

// Error is the error type returned across the prefixset, ipv4 and ipv6
// packages. Use errors.As to recover the *Error and compare its Kind, or
// pserr.KindOf as a one-line shortcut.
type Error = pserr.Error

func afiMismatch(format string, args ...interface{}) *Error {
	return pserr.New(AfiMismatch, format, args...)
}
