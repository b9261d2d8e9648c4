package errs

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the service can produce.
//
// The set is closed on purpose: HTTP handlers switch over the kind to pick a
// status code, and a new kind must be given a mapping there. Anything that
// does not carry a Kind is treated as Unclassified.
type Kind int

const (
	// Unclassified is the zero value: an unexpected failure that must never
	// leak its internal text to API clients.
	Unclassified Kind = iota

	// EmptyInput marks a missing or blank request parameter.
	EmptyInput

	// BadFormat marks a date string that does not match YYYY-MM-DD.
	BadFormat

	// BadCalendarDate marks a well-shaped but impossible date (e.g. 2024-13-45).
	BadCalendarDate

	// FutureDate marks a date strictly after today.
	FutureDate

	// InvalidSymbol marks an unknown ticker or a ticker with no usable price
	// data. Folding "no data" into this kind mirrors the upstream contract:
	// a symbol without prices is indistinguishable from a bogus one.
	InvalidSymbol

	// Transport marks a network-level failure while contacting the provider.
	// It is never produced for data-level problems.
	Transport
)

// String returns a short identifier for logs.
func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty_input"
	case BadFormat:
		return "bad_format"
	case BadCalendarDate:
		return "bad_calendar_date"
	case FutureDate:
		return "future_date"
	case InvalidSymbol:
		return "invalid_symbol"
	case Transport:
		return "transport"
	default:
		return "unclassified"
	}
}

// Error is the tagged error carried across layers.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a tagged error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds a tagged error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a tagged error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain.
// A nil or untagged error reports Unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unclassified
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
