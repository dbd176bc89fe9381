package errors

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline and adapter failures. Every error produced by
// the processing core carries exactly one Kind so callers can map it to a
// transport-level response without string matching.
type Kind string

const (
	// KindPrecondition - a required field was missing before a run started.
	KindPrecondition Kind = "precondition"
	// KindConflict - a duplicate processing trigger lost the status CAS.
	KindConflict Kind = "conflict"
	// KindSubmission - an external call was rejected at submission time.
	KindSubmission Kind = "submission"
	// KindFetch - a network fetch of media or results failed.
	KindFetch Kind = "fetch"
	// KindTimeout - the dubbing poll deadline was exceeded.
	KindTimeout Kind = "timeout"
	// KindProvider - an external capability reported a terminal failure.
	KindProvider Kind = "provider"
	// KindPersistence - a record or storage write failed.
	KindPersistence Kind = "persistence"
	// KindNotFound - the referenced record does not exist.
	KindNotFound Kind = "not_found"
)

// Error is the pipeline error type. Adapters surface these unmodified to
// the orchestrator; the orchestrator does not retry any kind.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error of the given kind.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and additional context.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, message: message, cause: err}
}

// Wrapf wraps an error with a kind and formatted context.
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), cause: err}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches two errors of the same kind, so sentinel-style checks like
// errors.Is(err, Precondition("")) work without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// KindOf returns the Kind of err, or the empty Kind for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Constructors for the taxonomy. Messages are user-visible; the
// triggering request receives them verbatim.

// Precondition returns an error for a run that may not start.
func Precondition(message string) *Error {
	return New(KindPrecondition, message)
}

// RequiredField returns a precondition error for a missing field.
func RequiredField(field string) *Error {
	return Newf(KindPrecondition, "%s is required", field)
}

// Conflict returns an error for a rejected duplicate processing trigger.
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Submission wraps an external submission rejection.
func Submission(err error, operation string) error {
	return Wrapf(err, KindSubmission, "%s submission failed", operation)
}

// Fetch wraps a failed network fetch.
func Fetch(err error, what string) error {
	return Wrapf(err, KindFetch, "failed to fetch %s", what)
}

// Timeout returns an error for an exceeded polling deadline.
func Timeout(operation string, elapsed string) *Error {
	return Newf(KindTimeout, "%s timed out after %s", operation, elapsed)
}

// Provider returns an error for a terminal external failure.
func Provider(provider, detail string) *Error {
	if detail == "" {
		detail = "unknown error"
	}
	return Newf(KindProvider, "%s reported failure: %s", provider, detail)
}

// Persistence wraps a failed record or storage write.
func Persistence(err error, operation string) error {
	return Wrapf(err, KindPersistence, "%s failed", operation)
}

// NotFound returns an error for a missing record.
func NotFound(itemType string, identifier string) *Error {
	return Newf(KindNotFound, "%s not found: %s", itemType, identifier)
}
