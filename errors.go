package editorblocks

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a conversion failure.
type ErrorKind int

const (
	// Unknown is an uncategorized failure.
	Unknown ErrorKind = iota
	// HTMLParse is a failure while scanning HTML.
	HTMLParse
	// MarkdownParse is a failure while scanning Markdown.
	MarkdownParse
	// InvalidInput is empty or unusable input.
	InvalidInput
	// Serialization is a failure to encode the result.
	Serialization
)

func (k ErrorKind) String() string {
	switch k {
	case HTMLParse:
		return "HTML parse error"
	case MarkdownParse:
		return "Markdown parse error"
	case InvalidInput:
		return "invalid input"
	case Serialization:
		return "serialization error"
	default:
		return "unknown error"
	}
}

// Error is the structured error returned by conversions.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying cause, may be nil
}

// Sentinel errors for use with errors.Is. An *Error matches the sentinel of
// its kind.
var (
	ErrUnknown       = &Error{Kind: Unknown}
	ErrHTMLParse     = &Error{Kind: HTMLParse}
	ErrMarkdownParse = &Error{Kind: MarkdownParse}
	ErrInvalidInput  = &Error{Kind: InvalidInput}
	ErrSerialization = &Error{Kind: Serialization}
)

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
