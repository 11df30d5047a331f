package jsonccst

import (
	"errors"
	"fmt"
)

// ParseError reports a lexical or structural failure while parsing JSONC
// source. It carries enough position information for a caller to point a
// user at the offending byte.
type ParseError struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonccst: parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Sentinel errors for an unrepresentable target value: the target graph
// cannot be rendered at all, so no partial output is produced.
var (
	ErrCyclicValue       = errors.New("jsonccst: target value graph contains a cycle")
	ErrNonFiniteNumber   = errors.New("jsonccst: target contains a non-finite number")
	ErrInvalidUTF8String = errors.New("jsonccst: target contains a string that is not valid UTF-8")
)

// Sentinel errors for the "invariant violation during mutation" error kind.
var (
	ErrDuplicateKey = errors.New("jsonccst: duplicate object key")
	ErrForeignNode  = errors.New("jsonccst: node does not belong to the given parent")
)

// InvariantError wraps one of the sentinels above with the offending
// context. The reconciler returns these as ordinary errors rather than
// panicking; well-formed inputs never trigger them, and tests assert that.
type InvariantError struct {
	Err     error
	Context string
}

func (e *InvariantError) Error() string {
	if e.Context == "" {
		return "jsonccst: " + e.Err.Error()
	}
	return fmt.Sprintf("jsonccst: %s: %s", e.Err.Error(), e.Context)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func invariantErrorf(err error, context string) error {
	return &InvariantError{Err: err, Context: context}
}
