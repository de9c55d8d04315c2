// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package errors

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind classifies a failure so that callers can react to the class of
// error instead of matching on message text.
type Kind int

const (
	// KindUnknown is the zero Kind; errors that did not originate from
	// this package report it.
	KindUnknown Kind = iota
	// KindConfiguration reports an unknown standard, unit or algorithm
	// passed to a constructor or setter.
	KindConfiguration
	// KindParse reports text that does not match any numeric or suffix
	// pattern.
	KindParse
	// KindOverflow reports a numeric conversion exceeding the
	// representable range. It is distinct from KindParse so that callers
	// can tell "value too large" from garbage input.
	KindOverflow
	// KindTypeMismatch reports an operation across different standards,
	// against an incompatible operand type, or with conflicting unit
	// indications.
	KindTypeMismatch
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindParse:
		return "parse"
	case KindOverflow:
		return "overflow"
	case KindTypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// KindError is an error paired with a Kind. Use KindOf or IsKind to
// extract the classification from a wrapped error chain.
type KindError struct {
	kind Kind
	msg  string
}

// New creates a KindError with a formatted message. The message should
// carry the offending literal input or symbol to aid diagnosis.
func New(kind Kind, format string, args ...interface{}) error {
	return &KindError{kind, fmt.Sprintf(format, args...)}
}

func (e *KindError) Error() string {
	return e.msg
}

func (e *KindError) Kind() Kind {
	return e.kind
}

// KindOf returns the Kind carried by err, or KindUnknown when err does
// not wrap a KindError.
func KindOf(err error) Kind {
	var kerr *KindError
	if errors.As(err, &kerr) {
		return kerr.Kind()
	}
	return KindUnknown
}

// IsKind reports whether err wraps a KindError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// PositionalError is an error paired with a position. This is useful for APIs
// that perform bulk operations that can partially fail and the caller must bind
// which input(s) failed. Use the `Position` method to extract the position.
type PositionalError struct {
	pos int
	err error
}

// NewPositionalError creates an error paired with a position.
func NewPositionalError(pos int, err error) error {
	return &PositionalError{pos, err}
}

func (e *PositionalError) Error() string {
	return fmt.Sprintf("Positional(%d): %s", e.pos, e.err.Error())
}

func (e *PositionalError) Position() int {
	return e.pos
}

func (e *PositionalError) Unwrap() error {
	return e.err
}

// Errors is an error that wrap two or more errors. The downside of batching
// many errors is that unwrap will only return the first error. Use the
// `Errors` method to extract all errors.
type Errors struct {
	errs []error
}

func (e *Errors) Error() string {
	buf := new(bytes.Buffer)

	buf.WriteString("Multiple errors: ")
	for i, err := range e.errs {
		fmt.Fprintf(buf, "(%d){%s}\t", i+1, err.Error())
	}

	return buf.String()
}

func (e *Errors) Errors() []error {
	return e.errs
}

func (e *Errors) Unwrap() error {
	// Only return the first error.
	return e.errs[0]
}

func NewErrors(errs ...error) error {
	var errors []error
	for _, err := range errs {
		if err != nil {
			errors = append(errors, err)
		}
	}

	switch len(errors) {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return &Errors{errors}
	}
}
