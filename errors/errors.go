package errors

import (
	"fmt"
	"io/fs"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseArgv    Phase = "argv"    // startup argument recovery
	PhaseDecode  Phase = "decode"  // bytes to wide characters
	PhaseEncode  Phase = "encode"  // wide characters to bytes
	PhaseConsole Phase = "console" // console and stream output
	PhaseFormat  Phase = "format"  // formatted printing
	PhaseFS      Phase = "fs"      // filesystem adapters
	PhaseConfig  Phase = "config"  // adapter configuration
)

// Kind categorizes the error
type Kind string

const (
	KindNoResult        Kind = "no_result"
	KindInvalidUTF8     Kind = "invalid_utf8"
	KindInvalidUTF16    Kind = "invalid_utf16"
	KindIllegalSequence Kind = "illegal_sequence"
	KindUnavailable     Kind = "unavailable"
	KindUnsupported     Kind = "unsupported"
	KindInvalidInput    Kind = "invalid_input"
	KindNilInput        Kind = "nil_input"
	KindAllocation      Kind = "allocation"
	KindIO              Kind = "io"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	CodePage string
	Name     string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Name != "" {
		b.WriteString(" at ")
		b.WriteString(e.Name)
	}

	if e.CodePage != "" {
		b.WriteString(": code page ")
		b.WriteString(e.CodePage)
	}

	if e.Detail != "" {
		if e.CodePage != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
//
// A target *Error with an empty Phase matches on Kind alone, which lets
// callers test for a category such as KindNoResult regardless of where it
// was raised. Invalid input errors also match fs.ErrInvalid so filesystem
// callers can keep using the standard sentinel.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase == "" {
			return e.Kind == t.Kind
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	if target == fs.ErrInvalid {
		return e.Kind == KindInvalidInput
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Name sets the path or argument the error refers to
func (b *Builder) Name(name string) *Builder {
	b.err.Name = name
	return b
}

// CodePage sets the code page name
func (b *Builder) CodePage(cp string) *Builder {
	b.err.CodePage = cp
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NoResult marks a conversion that produced nothing. The cause, if any,
// carries the specific reason.
func NoResult(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoResult,
		Detail: "conversion produced no result",
		Cause:  cause,
	}
}

// NilInput creates an error for an absent conversion input
func NilInput(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilInput,
		Detail: "nil input",
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview(data)),
	}
}

// InvalidUTF16 creates an error for ill-formed UTF-16 such as an unpaired surrogate
func InvalidUTF16(phase Phase, index int, unit uint16) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF16,
		Detail: fmt.Sprintf("unpaired surrogate 0x%04x at index %d", unit, index),
		Value:  unit,
	}
}

// IllegalSequence creates an error for bytes that have no mapping in a code page
func IllegalSequence(phase Phase, codePage string, data []byte) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindIllegalSequence,
		CodePage: codePage,
		Detail:   fmt.Sprintf("no mapping for input %x", preview(data)),
	}
}

// Unavailable creates an error for a platform capability that could not be located
func Unavailable(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnavailable,
		Detail: fmt.Sprintf("%s unavailable", what),
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidPath creates the error returned when a path cannot be converted
// for a native filesystem call. It matches fs.ErrInvalid.
func InvalidPath(op, name string, cause error) *Error {
	return &Error{
		Phase:  PhaseFS,
		Kind:   KindInvalidInput,
		Name:   name,
		Detail: fmt.Sprintf("%s: cannot convert path", op),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

func preview(data []byte) []byte {
	if len(data) > 32 {
		return data[:32]
	}
	return data
}
