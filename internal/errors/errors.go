// Package errors defines the unified error taxonomy for the generation
// pipeline. Every failure that crosses the emission driver boundary is one
// of the kinds below; malformed method shapes are not errors at all and are
// recovered silently inside the field model builder.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the failure class of a generation error.
type Kind int

const (
	UnknownKind Kind = iota

	// TemplateNotFound means the named template could not be located by
	// the template engine.
	TemplateNotFound

	// TemplateSyntaxError means the template body could not be parsed.
	TemplateSyntaxError

	// RenderError covers every other substitution failure, including a
	// missing required context variable.
	RenderError

	// EmissionIOError covers write and close failures from the file
	// emission collaborator.
	EmissionIOError
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case TemplateNotFound:
		return "TemplateNotFound"
	case TemplateSyntaxError:
		return "TemplateSyntaxError"
	case RenderError:
		return "RenderError"
	case EmissionIOError:
		return "EmissionIOError"
	default:
		return "UnknownError"
	}
}

// GenError is a generation failure with a kind and an optional cause.
type GenError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *GenError) Unwrap() error {
	return e.Cause
}

// New creates a new GenError with the given kind and message.
func New(kind Kind, message string) *GenError {
	return &GenError{Kind: kind, Message: message}
}

// Newf creates a new GenError with a formatted message.
func Newf(kind Kind, format string, args ...any) *GenError {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap creates a GenError that wraps an underlying cause.
func Wrap(kind Kind, message string, cause error) *GenError {
	return &GenError{Kind: kind, Message: message, Cause: cause}
}

// Wrapf creates a wrapping GenError with a formatted message.
func Wrapf(kind Kind, cause error, format string, args ...any) *GenError {
	return Wrap(kind, fmt.Sprintf(format, args...), cause)
}

// KindOf returns the kind of the first GenError in err's chain, or
// UnknownKind when there is none.
func KindOf(err error) Kind {
	var ge *GenError
	if stderrors.As(err, &ge) {
		return ge.Kind
	}
	return UnknownKind
}

// IsKind reports whether err's chain contains a GenError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
