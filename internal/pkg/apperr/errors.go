package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind buckets every failure the API can surface. Anything that is not one of
// the first four is reported as Internal.
type Kind int

const (
	Auth Kind = iota
	Validation
	NotFound
	Duplicate
	Internal
)

func (k Kind) String() string {
	switch k {
	case Auth:
		return "AUTH"
	case Validation:
		return "VALIDATION"
	case NotFound:
		return "NOT_FOUND"
	case Duplicate:
		return "DUPLICATE"
	default:
		return "INTERNAL"
	}
}

// Status maps a kind to its stable HTTP status code.
func (k Kind) Status() int {
	switch k {
	case Auth:
		return http.StatusUnauthorized
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Duplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Status overrides Kind.Status() when non-zero. The bookmark duplicate
	// path uses it to keep the 400 the original API returned.
	Status int
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.Status()
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func NewAuth(message string) *Error       { return New(Auth, message) }
func NewValidation(message string) *Error { return New(Validation, message) }
func NewNotFound(message string) *Error   { return New(NotFound, message) }
func NewDuplicate(message string) *Error  { return New(Duplicate, message) }

func NewInternal(cause error) *Error {
	return Wrap(Internal, "internal server error", cause)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
