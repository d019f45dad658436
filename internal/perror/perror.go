// Package perror defines the categorized error value returned by pulse
// helpers. An Error carries a short kind label and a human-readable message
// and renders as "<kind>: <message>".
package perror

import "errors"

// Error kinds.
const (
	NotFound        = "NotFound"
	IO              = "Io"
	AlreadyExists   = "AlreadyExists"
	InvalidArgument = "InvalidArgument"
)

// Kind-only values for use with errors.Is.
var (
	ErrNotFound        = &Error{kind: NotFound}
	ErrIO              = &Error{kind: IO}
	ErrAlreadyExists   = &Error{kind: AlreadyExists}
	ErrInvalidArgument = &Error{kind: InvalidArgument}
)

// Error is an immutable kind/message pair.
type Error struct {
	kind    string
	message string
	cause   error
}

// New returns an Error. It panics if kind is empty.
func New(kind, message string) *Error {
	return Wrap(kind, message, nil)
}

// Wrap is New with an underlying cause, reachable through errors.Unwrap.
// The cause is not part of the display string.
func Wrap(kind, message string, cause error) *Error {
	if kind == "" {
		panic("perror: empty error kind")
	}
	return &Error{kind: kind, message: message, cause: cause}
}

func (e *Error) Kind() string    { return e.kind }
func (e *Error) Message() string { return e.message }

func (e *Error) Error() string {
	return e.kind + ": " + e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.kind
	}
	return ""
}
